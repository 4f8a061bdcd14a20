// Package demotools is the built-in tool set served by the toolcall CLI.
package demotools

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/skosovsky/toolcall"
)

// ErrDivisionByZero is returned by the divide tool.
var ErrDivisionByZero = errors.New("division by zero")

// Factories lists every demo tool in registration order.
func Factories() []toolcall.Factory {
	return []toolcall.Factory{add, greet, concat, divide, shout, sleep}
}

func add() (*toolcall.Tool, error) {
	return toolcall.NewTool("add", "Adds two integers and returns the result as a string.", []toolcall.Param{
		{Name: "a", Type: toolcall.Integer},
		{Name: "b", Type: toolcall.Integer},
	}, toolcall.Func(func(_ context.Context, args toolcall.Args) (string, error) {
		return strconv.FormatInt(args.Int(0)+args.Int(1), 10), nil
	}))
}

func greet() (*toolcall.Tool, error) {
	return toolcall.NewTool("greet", "Greets a person by name.", []toolcall.Param{
		{Name: "name", Type: toolcall.String, Description: "Who to greet"},
		{Name: "punctuation", Type: toolcall.String, Optional: true, Default: json.RawMessage(`"!"`)},
	}, toolcall.Func(func(_ context.Context, args toolcall.Args) (string, error) {
		return "Hello, " + args.String(0) + args.String(1), nil
	}))
}

func concat() (*toolcall.Tool, error) {
	return toolcall.NewTool("concat", "Concatenates two strings.", []toolcall.Param{
		{Name: "a", Type: toolcall.String},
		{Name: "b", Type: toolcall.String},
	}, toolcall.Go(func(_ context.Context, args toolcall.Args) (string, error) {
		return args.String(0) + args.String(1), nil
	}))
}

func divide() (*toolcall.Tool, error) {
	return toolcall.NewTool("divide", "Divides a by b.", []toolcall.Param{
		{Name: "a", Type: toolcall.Number},
		{Name: "b", Type: toolcall.Number},
	}, toolcall.Func(func(_ context.Context, args toolcall.Args) (string, error) {
		if args.Float(1) == 0 {
			return "", ErrDivisionByZero
		}
		return strconv.FormatFloat(args.Float(0)/args.Float(1), 'g', -1, 64), nil
	}))
}

// shout is declared the way an external generator would hand it over: as a raw schema.
func shout() (*toolcall.Tool, error) {
	schema := []byte(`{
		"type": "object",
		"properties": {
			"text": {"type": "string", "description": "Text to shout"},
			"times": {"type": ["integer", "null"], "default": 1}
		},
		"required": ["text"]
	}`)
	return toolcall.NewToolFromSchema("shout", "Upper-cases text, optionally repeated.", schema,
		toolcall.Func(func(_ context.Context, args toolcall.Args) (string, error) {
			n := max(args.Int(1), 1)
			return strings.Repeat(strings.ToUpper(args.String(0)), int(n)), nil
		}))
}

func sleep() (*toolcall.Tool, error) {
	return toolcall.NewTool("sleep", "Waits for the given number of milliseconds, then reports how long it slept.", []toolcall.Param{
		{Name: "ms", Type: toolcall.Integer},
	}, toolcall.Go(func(ctx context.Context, args toolcall.Args) (string, error) {
		d := time.Duration(args.Int(0)) * time.Millisecond
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			return "slept " + d.String(), nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}))
}
