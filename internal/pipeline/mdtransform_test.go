package pipeline

import (
	"context"
	"testing"
)

func TestCommonMarkPreprocessor_PreprocessMarkdown(t *testing.T) {
	t.Parallel()

	p := &CommonMarkPreprocessor{}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "normalizes line endings",
			input: "a\r\nb\rc",
			want:  "a\nb\nc",
		},
		{
			name:  "compresses blank lines",
			input: "a\n\n\n\nb",
			want:  "a\n\nb",
		},
		{
			name:  "marks highlights",
			input: "x ==y== z ==w==",
			want:  "x " + MarkStartPlaceholder + "y" + MarkEndPlaceholder + " z " + MarkStartPlaceholder + "w" + MarkEndPlaceholder,
		},
		{
			name:  "highlight does not span lines",
			input: "==a\nb==",
			want:  "==a\nb==",
		},
		{
			name:  "fenced code untouched",
			input: "~~~\n==a==\n~~~\n==b==",
			want:  "~~~\n==a==\n~~~\n" + MarkStartPlaceholder + "b" + MarkEndPlaceholder,
		},
		{
			name:  "other fence kind does not close",
			input: "```\n~~~\n==a==\n```",
			want:  "```\n~~~\n==a==\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := p.PreprocessMarkdown(context.Background(), tt.input); got != tt.want {
				t.Errorf("PreprocessMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertMarkPlaceholders(t *testing.T) {
	t.Parallel()

	in := "<p>" + MarkStartPlaceholder + "x" + MarkEndPlaceholder + "</p>"
	if got, want := ConvertMarkPlaceholders(in), "<p><mark>x</mark></p>"; got != want {
		t.Errorf("ConvertMarkPlaceholders() = %q, want %q", got, want)
	}
}
