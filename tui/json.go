package tui

import (
	"encoding/json"
	"io"
)

// JSONPresenter renders output as JSON.
type JSONPresenter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewJSONPresenter creates a new JSON presenter.
func NewJSONPresenter(opts PresenterOptions) *JSONPresenter {
	encoder := json.NewEncoder(opts.Writer)
	encoder.SetIndent("", "  ")
	return &JSONPresenter{
		w:       opts.Writer,
		encoder: encoder,
	}
}

// RenderCall renders a call result as JSON.
func (p *JSONPresenter) RenderCall(call *CallView) error {
	return p.encoder.Encode(call)
}

// RenderExports renders the export table as JSON.
func (p *JSONPresenter) RenderExports(exports *ExportsView) error {
	return p.encoder.Encode(exports)
}

// RenderVerify renders a digest comparison as JSON.
func (p *JSONPresenter) RenderVerify(verify *VerifyView) error {
	return p.encoder.Encode(verify)
}

// RenderConfig renders the configuration as JSON.
func (p *JSONPresenter) RenderConfig(config *ConfigView) error {
	return p.encoder.Encode(config)
}

// RenderMessage renders a message as JSON.
func (p *JSONPresenter) RenderMessage(message string) error {
	return p.encoder.Encode(map[string]string{"message": message})
}
