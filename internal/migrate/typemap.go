package migrate

// flatListTypeNames maps legacy flat-list type names to canonical ones.
// Unmapped names pass through unchanged.
var flatListTypeNames = map[string]string{
	"Title":     "Heading",
	"Subtitle":  "Heading",
	"Paragraph": "Text",
	"Rich":      "RichText",
	"Btn":       "Button",
	"Img":       "Image",
	"Box":       "Container",
	"Row":       "Columns",
	"Col":       "Column",
	"Hr":        "Divider",
	"Gap":       "Spacer",
	"Embed":     "Video",
}

// graphMapping describes how one legacy keyed-graph type migrates: its
// canonical name plus an optional prop reshape.
type graphMapping struct {
	name  string
	props func(map[string]any) map[string]any
}

// keyedGraphTypes maps keyed-graph resolved type names to canonical kinds.
// Types without an entry are skipped (or rejected in strict mode) and
// reported in the migration stats.
var keyedGraphTypes = map[string]graphMapping{
	"HeadingBlock": {name: "Heading", props: func(p map[string]any) map[string]any {
		return renameProps(p, map[string]string{"content": "text", "size": "fontSize"})
	}},
	"TextBlock": {name: "Text", props: func(p map[string]any) map[string]any {
		return renameProps(p, map[string]string{"content": "text"})
	}},
	"ButtonElement": {name: "Button", props: func(p map[string]any) map[string]any {
		return renameProps(p, map[string]string{
			"label": "text",
			"bg":    "buttonBackgroundColor",
			"fg":    "buttonTextColor",
			"url":   "href",
		})
	}},
	"ImageElement": {name: "Image", props: func(p map[string]any) map[string]any {
		return renameProps(p, map[string]string{"source": "src", "caption": "alt"})
	}},
	"SectionBlock":  {name: "Section"},
	"ColumnRow":     {name: "Columns"},
	"ColumnCell":    {name: "Column"},
	"SpacerBlock":   {name: "Spacer"},
	"DividerBlock":  {name: "Divider"},
	"VideoEmbed": {name: "Video", props: func(p map[string]any) map[string]any {
		return renameProps(p, map[string]string{"url": "src"})
	}},
	"FormBlock":  {name: "Form"},
	"InputField": {name: "Input"},
}

// renameProps copies props, moving legacy keys to their canonical names.
// Canonical keys already present win over renamed legacy ones.
func renameProps(in map[string]any, renames map[string]string) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		if canonical, ok := renames[k]; ok {
			if _, exists := in[canonical]; !exists {
				out[canonical] = v
			}
			continue
		}
		out[k] = v
	}
	return out
}
