// Package puzzle defines the contract shared by every daily solver and a
// registry that dispatches to them.
//
// What:
//
//   - Answer holds the two textual results of one day.
//   - Solver is a pure function from puzzle input to Answer.
//   - Options carries the injected logger and integer day parameters
//     (for example the cube face size of day 22).
//   - Registry maps day numbers to solvers and can solve many days at once,
//     one goroutine per day.
//
// Usage
//
//	reg := puzzle.NewRegistry()
//	_ = reg.Register(1, calories.Solve)
//	ans, err := reg.Solve(1, input, puzzle.WithLogger(logger))
//
// Errors
//
//   - ErrInvalidDay    if a day outside 1..25 is registered.
//   - ErrDuplicateDay  if a day is registered twice.
//   - ErrUnknownDay    if no solver is registered for a day.
//   - ErrOptionViolation for invalid options.
package puzzle
