// Package toolcall dispatches JSON tool calls (as produced by an LLM) to typed,
// positional Go tool implementations.
//
// # Overview
//
// A tool is a descriptor: name, description, an ordered JSON Schema for its
// parameters, and a Callable. The caller speaks only JSON; this package turns a
// request into a call:
//
//	JSON request → Registry lookup → schema validation → ordered marshaling → Executor → result
//
// # Key concepts
//
//   - Schema order is positional order: the arguments object may list keys in any
//     order, the callable always receives them in declared order.
//   - The registered schema is authoritative: a "parameters" field inside a request
//     is ignored.
//   - Sync and async tools (Func, AsyncFunc) share one contract. Panics in either are
//     caught at the Executor and returned as ExecutionError("panic in tool").
//   - Every error is one of NotFoundError, BadArgsError or ExecutionError (see KindOf).
//
// # Example
//
//	add, err := toolcall.NewTool("add", "Add two integers", []toolcall.Param{
//	    {Name: "a", Type: toolcall.Integer},
//	    {Name: "b", Type: toolcall.Integer},
//	}, toolcall.Func(func(_ context.Context, args toolcall.Args) (string, error) {
//	    return strconv.FormatInt(args.Int(0)+args.Int(1), 10), nil
//	}))
//	if err != nil { ... }
//	h, err := toolcall.NewHandler(toolcall.NewRegistry(toolcall.Static(add)))
//	if err != nil { ... }
//	res, err := h.CallTool(ctx, []byte(`{"type":"function","function":{"name":"add","arguments":{"b":2,"a":1}}}`))
package toolcall
