package dto

import (
	"fmt"
	"html"
	"strings"

	"tipcast.app/frames/internal/model"
)

// FrameHTML serializes a frame document into the protocol's wire format: an
// HTML page whose meta tags carry the image, buttons and input spec. Feed
// clients read only the tags; the body is a fallback for browsers.
func FrameHTML(doc *model.FrameDocument, title string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	meta(&b, "og:title", title)
	meta(&b, "og:image", doc.ImageURL)
	meta(&b, "fc:frame", "vNext")
	meta(&b, "fc:frame:image", doc.ImageURL)
	meta(&b, "fc:frame:image:aspect_ratio", string(doc.AspectRatio))

	for i, btn := range doc.Buttons {
		n := i + 1
		meta(&b, fmt.Sprintf("fc:frame:button:%d", n), btn.Label)
		meta(&b, fmt.Sprintf("fc:frame:button:%d:action", n), string(btn.Kind))
		if btn.Target != "" {
			meta(&b, fmt.Sprintf("fc:frame:button:%d:target", n), btn.Target)
		}
	}

	if doc.InputPlaceholder != "" {
		meta(&b, "fc:frame:input:text", doc.InputPlaceholder)
	}
	if doc.State != "" {
		meta(&b, "fc:frame:state", doc.State)
	}

	b.WriteString("<title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title>\n</head>\n<body>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func meta(b *strings.Builder, property, content string) {
	fmt.Fprintf(b, "<meta property=\"%s\" content=\"%s\" />\n",
		html.EscapeString(property), html.EscapeString(content))
}
