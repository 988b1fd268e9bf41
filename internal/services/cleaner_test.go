package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no markers is identity", "  Hello there \n", "  Hello there \n"},
		{"empty", "", ""},
		{"leading reasoning block", "<think>x</think>Hello", "Hello"},
		{"multiline block with whitespace", "<think>\nstep 1\nstep 2\n</think>\n\nThe answer is 4.", "The answer is 4."},
		{"several blocks", "<think>a</think>One <think>b</think>Two", "One Two"},
		{"stray closing marker", "reasoning</think> Answer", "reasoning Answer"},
		{"unclosed opening marker", "<think>partial answer ", "partial answer"},
		{"marker spliced by removal", "<thi<think>nk>x", "x"},
		{"nested markers", "<think><think>a</think>b</think>c", "bc"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanResponse(tc.in))
		})
	}
}

func TestCleanResponse_RemovesEveryMarker(t *testing.T) {
	inputs := []string{
		"<think>x</think>Hello",
		"</think></think><think>",
		"a<think>b</think>c</think>d<think>e",
		"<</think>think>z</<think>think>",
	}

	for _, in := range inputs {
		out := CleanResponse(in)
		assert.NotContains(t, out, thinkOpen, "input %q", in)
		assert.NotContains(t, out, thinkClose, "input %q", in)
	}
}

func TestCleanResponse_Idempotent(t *testing.T) {
	inputs := []string{
		"plain text",
		"  padded  ",
		"<think>x</think>Hello",
		"<thi<think>nk>x",
		strings.Repeat("<think>a</think>b ", 10),
	}

	for _, in := range inputs {
		once := CleanResponse(in)
		assert.Equal(t, once, CleanResponse(once), "input %q", in)
	}
}
