// Package agent implements a chat assistant, backed by Gemini, that answers
// questions about a cashbook ledger.
package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the chat session between the user and an expert.
type Agent struct {
	w      io.Writer
	r      *bufio.Reader
	Expert *Expert
	// Print displays the expert answers, they are markdown.
	Print func(w io.Writer, md string) error
}

// New creates an Agent writing to w and reading the user questions from r.
func New(w io.Writer, r io.Reader, expert *Expert) *Agent {
	return &Agent{
		w:      w,
		r:      bufio.NewReader(r),
		Expert: expert,
		Print: func(w io.Writer, md string) error {
			_, err := fmt.Fprintln(w, md)
			return err
		},
	}
}

const prompt = "assist> "

// Run starts the interactive session. prompts are asked first, as if typed by
// the user. The session ends on "bye" or at the end of the input.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Expert.chat == nil {
		if err := a.Expert.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to the cashbook assistant. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if errors.Is(err, io.EOF) && strings.TrimSpace(input) == "" {
				return nil // Ctrl+D
			}
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "bye" {
			return nil
		}
		if input == "" {
			continue
		}

		content, err := a.Expert.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		if err := a.Print(a.w, Text(content)); err != nil {
			return err
		}
	}
}

// Text concatenates the text parts of content.
func Text(content *genai.Content) string {
	if content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
