package artdoc

import (
	"strings"
)

// HTMLSystemInstruction is the system prompt shared by model-backed HTML generators.
const HTMLSystemInstruction = "You are an expert in converting articles to structured HTML."

// BuildHTMLPrompt builds the user prompt asking a model to mark up article
// with image placeholders.
func BuildHTMLPrompt(article string) string {
	var sb strings.Builder
	sb.WriteString("Convert the article below into clean HTML, using appropriate tags to structure the content. ")
	sb.WriteString("Identify places where an illustration would help and mark each one with an <img> tag ")
	sb.WriteString(`with src="image_placeholder_{n}.jpg", where {n} is a natural number starting at 1, `)
	sb.WriteString("and an alt attribute holding a detailed prompt that can be used to generate the image. ")
	sb.WriteString("The alt text must refer directly to the content of the article. ")
	sb.WriteString("Place a caption under each image using appropriate HTML tags. ")
	sb.WriteString("Do not use CSS or JavaScript. ")
	sb.WriteString("Keep the language of the article. ")
	sb.WriteString("Return only the formatted content, without <html>, <head> or <body> tags.\n\n")
	sb.WriteString("Article:\n")
	sb.WriteString(article)
	return sb.String()
}

// CleanGeneratedHTML trims whitespace and strips a Markdown code fence that
// models sometimes wrap around their HTML reply.
func CleanGeneratedHTML(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	// Drop the opening fence line, including any language tag.
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		return ""
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
