package interview

import "context"

// Compiler folds a finished transcript into a single evaluation prompt and
// returns the model's report verbatim. It keeps no state of its own; the
// full transcript is embedded in the one prompt, so no history is replayed.
type Compiler struct {
	gen Generator
}

// NewCompiler creates a new Compiler instance
func NewCompiler(gen Generator) *Compiler {
	return &Compiler{gen: gen}
}

// Compile renders the transcript into a labeled script and asks the model
// for the structured feedback report. The returned text is not validated or
// reformatted.
func (c *Compiler) Compile(ctx context.Context, candidateName string, transcript []Entry) (string, error) {
	prompt := feedbackPrompt(candidateName, renderTranscript(transcript))
	return c.gen.Generate(ctx, prompt, nil)
}
