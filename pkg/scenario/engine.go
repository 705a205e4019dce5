package scenario

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalError represents a non-fatal error encountered while evaluating a
// scenario script, such as a parse error or a bad builtin argument.
type EvalError struct {
	Line    int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine evaluates scenario scripts in a sandboxed zygomys interpreter.
// It is safe for concurrent use; each call to Evaluate creates a fresh
// sandboxed environment for determinism.
type Engine struct {
	mu         sync.Mutex
	generation uint64
}

// NewEngine creates a new Engine instance.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate runs a scenario script and produces the described Scenario.
//
// Return semantics:
//   - On success: scenario + nil errors + nil error
//   - On parse/eval failure: nil scenario + eval errors + nil error
//   - On fatal failure (timeout, panic): nil + nil + error
//
// Evaluation does not validate the result; run Validate on the returned
// scenario before planning.
func (e *Engine) Evaluate(source string) (*Scenario, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		sc, evalErrs, err := e.evaluate(source)
		ch <- evalResult{scenario: sc, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, gen, &e.mu, &e.generation)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (*Scenario, []EvalError, error) {
	// An empty script is a valid scenario description with nothing set;
	// validation rejects it later if it is actually planned.
	if strings.TrimSpace(source) == "" {
		return New(), nil, nil
	}

	// Sandbox mode keeps user scripts away from the filesystem and
	// syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	sc := New()
	registerBuiltins(env, sc)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}
	if _, err := env.Run(); err != nil {
		return nil, parseZygomysError(err), nil
	}

	return sc, nil, nil
}

// linePattern matches zygomys messages like "Error on line N: ..." and
// "line N: ...".
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)|^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into an EvalError, extracting
// the line number when the message carries one.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	if m := linePattern.FindStringSubmatch(msg); m != nil {
		numStr, detail := m[1], m[2]
		if numStr == "" {
			numStr, detail = m[3], m[4]
		}
		line, _ := strconv.Atoi(numStr)
		return []EvalError{{Line: line, Message: strings.TrimSpace(detail)}}
	}

	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
