package fitfont

// Text is a text node that may carry a fit font modifier.
type Text struct {
	Content string
	fit     *Config
}

// NewText returns an unmodified text node.
func NewText(content string) Text {
	return Text{Content: content}
}

// FitFont returns a copy of t wrapped with a modifier built from opts.
func (t Text) FitFont(opts ...Option) (Text, error) {
	cfg, err := New(opts...)
	if err != nil {
		return t, err
	}
	t.fit = &cfg
	return t, nil
}

// Modifier returns the fit font modifier, if one was applied.
func (t Text) Modifier() (Config, bool) {
	if t.fit == nil {
		return Config{}, false
	}
	return *t.fit, true
}

// Layout returns the directives for the node in a container of the given
// size. ok is false if the node was never wrapped with FitFont.
func (t Text) Layout(container Size) (d Directives, ok bool) {
	if t.fit == nil {
		return Directives{}, false
	}
	return Calculate(container, *t.fit), true
}
