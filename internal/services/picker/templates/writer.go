package templates

import (
	"encoding/json"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and remembers the first write error so component
// bodies can stay linear.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (hw *htmlWriter) attr(name, value string) {
	hw.raw(" " + name + `="`)
	hw.text(value)
	hw.raw(`"`)
}

// vals writes an hx-vals attribute carrying one form field.
func (hw *htmlWriter) vals(field, value string) {
	encoded, err := json.Marshal(map[string]string{field: value})
	if err != nil {
		if hw.err == nil {
			hw.err = err
		}
		return
	}
	hw.attr("hx-vals", string(encoded))
}

// swap writes the htmx attributes that post to path and replace the widget.
func (hw *htmlWriter) swap(path string) {
	hw.attr("hx-post", path)
	hw.attr("hx-target", "#"+WidgetID)
	hw.attr("hx-swap", "outerHTML")
}
