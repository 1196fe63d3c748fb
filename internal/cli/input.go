// Package cli handles cmd line input for debugging the matcher interactively.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/fidelmatch/internal/logger"
	"github.com/bastiangx/fidelmatch/pkg/match"
	"github.com/bastiangx/fidelmatch/pkg/translit"
	"github.com/charmbracelet/log"
)

// Matcher is the part of match.Engine the CLI drives.
type Matcher interface {
	Matches(name, query string, opts match.Options) (bool, error)
	ExpandQuery(query string) ([]string, error)
	Transliterate(text string, opts translit.Options) ([]string, error)
	ClearCache()
	Stats() map[string]int
}

// Command is one parsed input line.
type Command struct {
	Verb string
	Args []string
}

var errUsage = errors.New(`usage: match <name> | <query>, expand <query>, tr <text>, stats, clear`)

// ParseCommand splits a line into a verb and its arguments. match takes two
// arguments separated by '|'; expand and tr take the rest of the line.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	verb, rest, _ := strings.Cut(line, " ")
	verb = strings.ToLower(verb)
	rest = strings.TrimSpace(rest)

	switch verb {
	case "match", "m":
		name, query, ok := strings.Cut(rest, "|")
		if !ok {
			return Command{}, errUsage
		}
		return Command{Verb: "match", Args: []string{strings.TrimSpace(name), strings.TrimSpace(query)}}, nil
	case "expand", "e":
		return Command{Verb: "expand", Args: []string{rest}}, nil
	case "tr", "translit":
		return Command{Verb: "tr", Args: []string{rest}}, nil
	case "stats":
		return Command{Verb: "stats"}, nil
	case "clear":
		return Command{Verb: "clear"}, nil
	}
	return Command{}, errUsage
}

// InputHandler reads commands from an input stream and prints results.
type InputHandler struct {
	matcher      Matcher
	options      match.Options
	translitOpts translit.Options
	in           io.Reader
	logger       *log.Logger
	requestCount int
}

// NewInputHandler creates a handler reading stdin with the given default options.
func NewInputHandler(matcher Matcher, opts match.Options, translitOpts translit.Options) *InputHandler {
	return NewInputHandlerWithIO(matcher, opts, translitOpts, os.Stdin, os.Stderr)
}

// NewInputHandlerWithIO is NewInputHandler over arbitrary streams.
func NewInputHandlerWithIO(matcher Matcher, opts match.Options, translitOpts translit.Options, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{
		matcher:      matcher,
		options:      opts,
		translitOpts: translitOpts,
		in:           in,
		logger:       logger.NewWithWriter(out, "cli"),
	}
}

// Start runs the loop until the input ends.
func (h *InputHandler) Start() error {
	h.logger.Print("fidelmatch CLI [BETA]")
	h.logger.Print(errUsage.Error())
	reader := bufio.NewReader(h.in)

	for {
		h.logger.Print("> ")
		line, err := reader.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			h.handleInput(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (h *InputHandler) handleInput(line string) {
	h.requestCount++
	cmd, err := ParseCommand(line)
	if err != nil {
		h.logger.Error(err.Error())
		return
	}

	start := time.Now()
	switch cmd.Verb {
	case "match":
		matched, err := h.matcher.Matches(cmd.Args[0], cmd.Args[1], h.options)
		if err != nil {
			h.logger.Errorf("match failed: %v", err)
			return
		}
		h.logger.Print("match", "name", cmd.Args[0], "query", cmd.Args[1], "result", matched, "took", time.Since(start))
	case "expand":
		terms, err := h.matcher.ExpandQuery(cmd.Args[0])
		if err != nil {
			h.logger.Errorf("expand failed: %v", err)
			return
		}
		h.printList(terms, start)
	case "tr":
		variants, err := h.matcher.Transliterate(cmd.Args[0], h.translitOpts)
		if err != nil {
			h.logger.Errorf("transliteration failed: %v", err)
			return
		}
		h.printList(variants, start)
	case "stats":
		for k, v := range h.matcher.Stats() {
			h.logger.Print(k, "value", v)
		}
		h.logger.Print("requests", "value", h.requestCount)
	case "clear":
		h.matcher.ClearCache()
		h.logger.Print("cache cleared")
	}
}

func (h *InputHandler) printList(items []string, start time.Time) {
	if len(items) == 0 {
		h.logger.Warn("No variants found")
		return
	}
	h.logger.Printf("Found %d variants in %v:", len(items), time.Since(start))
	for i, item := range items {
		h.logger.Print(fmt.Sprintf("%2d. %s", i+1, item))
	}
}
