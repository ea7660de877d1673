// Package aoc22 collects Advent of Code 2022 solvers around a small shared core.
//
// What is inside?
//
//	grid/        Point, compass directions, Grid[T] parsing and multi-source BFS
//	puzzle/      Answer, Solver, functional Options and the concurrent Registry
//	monkeymap/   day 22: walking a board as a flat torus or folded into a cube
//	calories/, marker/, rope/, hillclimb/, sand/, lava/,
//	diffusion/, blizzard/, snafu/  the other supported days
//	cmd/aoc/     command line front end (list, solve, all, trace)
//
// Every day package exposes the same entry point:
//
//	func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error)
//
// Solvers are pure functions of their input. Logging goes through the zap
// logger injected with puzzle.WithLogger and is silent by default.
package aoc22
