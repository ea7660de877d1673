package riddle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `root: pppw + sjmn
dbpl: 5
cczh: sllz + lgvd
zczc: 2
ptdq: humn - dvpt
dvpt: 3
lfqf: 4
humn: 5
ljgn: 2
sjmn: drzm * dbpl
sllz: 4
pppw: cczh / lfqf
lgvd: ljgn * ptdq
drzm: hmdt - zczc
hmdt: 32
`

func TestParse(t *testing.T) {
	r, err := Parse(sample)
	require.NoError(t, err)
	assert.Len(t, r.jobs, 15)
	assert.Equal(t, &Job{Name: "root", Left: "pppw", Op: "+", Right: "sjmn"}, r.jobs[Root])
	assert.Equal(t, 5, *r.jobs["dbpl"].Value)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"bad line":      "root: a +\n",
		"unknown":       strings.Replace(sample, "dbpl: 5", "dbpl: zzzz * dvpt", 1),
		"duplicate":     sample + "dbpl: 6\n",
		"no root":       strings.Replace(sample, "root:", "toor:", 1),
		"numeric root":  "root: 4\n",
		"negative leaf": "root: a + b\na: -1\nb: 2\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(in)
			require.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestEval(t *testing.T) {
	r, err := Parse(sample)
	require.NoError(t, err)

	for name, want := range map[string]int{Root: 152, "pppw": 4, "sjmn": 150, Human: 5, "ptdq": 2} {
		got, err := r.Eval(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
}

func TestEval_Errors(t *testing.T) {
	r, err := Parse("root: a + b\na: b * c\nb: a - c\nc: 1\n")
	require.NoError(t, err)
	_, err = r.Eval(Root)
	require.ErrorIs(t, err, ErrMalformedInput)

	r, err = Parse("root: a / b\na: 1\nb: c - c\nc: 3\n")
	require.NoError(t, err)
	_, err = r.Eval(Root)
	require.ErrorIs(t, err, ErrMalformedInput)

	_, err = r.Eval("nobody")
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestHumanShout(t *testing.T) {
	r, err := Parse(sample)
	require.NoError(t, err)
	got, err := r.HumanShout()
	require.NoError(t, err)
	assert.Equal(t, 301, got)

	// the human on the right-hand side of every operation
	r, err = Parse("root: k + a\nk: 10\na: b - c\nb: 20\nc: d / humn\nd: 40\nhumn: 1\n")
	require.NoError(t, err)
	got, err = r.HumanShout()
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestHumanShout_Errors(t *testing.T) {
	cases := map[string]string{
		"both sides": "root: a + b\na: humn * 2\nb: humn + 1\nhumn: 1\n",
		"neither":    "root: a + b\na: 1\nb: 2\nhumn: 3\n",
		"inexact":    "root: a + b\na: humn * 2\nb: 7\nhumn: 3\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := Parse(in)
			require.NoError(t, err)
			_, err = r.HumanShout()
			require.ErrorIs(t, err, ErrNoAnswer)
		})
	}

	r, err := Parse("root: a + b\na: 1\nb: 2\n")
	require.NoError(t, err)
	_, err = r.HumanShout()
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestInvert(t *testing.T) {
	cases := []struct {
		op           string
		target, know int
		left         bool
		want         int
	}{
		{"+", 10, 3, true, 7},
		{"+", 10, 3, false, 7},
		{"-", 10, 3, true, 13},
		{"-", 10, 3, false, -7},
		{"*", 12, 3, true, 4},
		{"/", 4, 3, true, 12},
		{"/", 2, 7, false, 3},
	}
	for _, tc := range cases {
		got, err := invert(tc.op, tc.target, tc.know, tc.left)
		require.NoError(t, err, "%+v", tc)
		assert.Equal(t, tc.want, got, "%+v", tc)
	}

	for _, tc := range []struct {
		op           string
		target, know int
	}{{"*", 10, 3}, {"*", 10, 0}, {"/", 0, 7}, {"/", 5, 2}} {
		_, err := invert(tc.op, tc.target, tc.know, false)
		require.ErrorIs(t, err, ErrNoAnswer, "%+v", tc)
	}
}

func TestSolve(t *testing.T) {
	ans, err := Solve(sample)
	require.NoError(t, err)
	assert.Equal(t, "152 301", ans.String())
}
