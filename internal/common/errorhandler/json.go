package errorhandler

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/toohamster/Slim/internal/common/fault"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonDetail is one chain entry in the JSON body. Code is omitted entirely
// when the failure carries no usable code.
type jsonDetail struct {
	Type    string   `json:"type"`
	Code    string   `json:"code,omitempty"`
	Message string   `json:"message"`
	File    string   `json:"file"`
	Line    int      `json:"line"`
	Trace   []string `json:"trace"`
}

// jsonBody is the full JSON response body.
type jsonBody struct {
	Message string       `json:"message"`
	Error   []jsonDetail `json:"error,omitempty"`
}

type jsonRenderer struct{}

func (jsonRenderer) render(f *fault.Fault, displayErrorDetails bool) string {
	body := jsonBody{Message: genericMessage}
	if displayErrorDetails {
		for _, entry := range f.Chain() {
			d := jsonDetail{
				Type:    entry.Kind,
				Message: entry.Message,
				File:    entry.File,
				Line:    entry.Line,
				Trace:   entry.Trace,
			}
			if entry.CodeSet() {
				d.Code = entry.Code
			}
			body.Error = append(body.Error, d)
		}
	}
	out, err := json.MarshalIndent(body, "", "    ")
	if err != nil {
		// A rendering failure is a defect; there is no handler beneath this one.
		panic(err)
	}
	return string(out)
}
