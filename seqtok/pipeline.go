package seqtok

// Pipeline composes stages in sequence: learn trains stage k on the
// output of stage k-1; encode folds left-to-right; decode folds
// right-to-left. An empty pipeline is the identity tokenizer.
type Pipeline struct {
	stages []Stage
}

// NewPipeline constructs a pipeline over the given stages, in order.
func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: append([]Stage(nil), stages...)}
}

// Stages returns the ordered stage list.
func (p *Pipeline) Stages() []Stage {
	return append([]Stage(nil), p.stages...)
}

// Learn trains stage 0 on (tokens, inputVocab), then transforms tokens
// through stage 0's encode and trains each subsequent stage on the
// prior stage's output vocabulary.
func (p *Pipeline) Learn(tokens []int, inputVocab []int) error {
	if len(p.stages) == 0 {
		return nil
	}
	working := append([]int(nil), tokens...)
	vocab := inputVocab
	for _, stage := range p.stages {
		if err := stage.Learn(working, vocab); err != nil {
			return err
		}
		var err error
		working, err = stage.Encode(working)
		if err != nil {
			return err
		}
		vocab = stage.OutputVocab()
	}
	return nil
}

// Encode folds stage.Encode left-to-right.
func (p *Pipeline) Encode(tokens []int) ([]int, error) {
	working := tokens
	for _, stage := range p.stages {
		var err error
		working, err = stage.Encode(working)
		if err != nil {
			return nil, err
		}
	}
	return working, nil
}

// Decode folds stage.Decode right-to-left.
func (p *Pipeline) Decode(ids []int) ([]int, error) {
	working := ids
	for i := len(p.stages) - 1; i >= 0; i-- {
		var err error
		working, err = p.stages[i].Decode(working)
		if err != nil {
			return nil, err
		}
	}
	return working, nil
}

// InputVocab returns stage 0's input vocabulary, or nil if empty.
func (p *Pipeline) InputVocab() []int {
	if len(p.stages) == 0 {
		return nil
	}
	return p.stages[0].InputVocab()
}

// OutputVocab returns the last stage's output vocabulary, or nil if
// empty.
func (p *Pipeline) OutputVocab() []int {
	if len(p.stages) == 0 {
		return nil
	}
	return p.stages[len(p.stages)-1].OutputVocab()
}
