/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/forkedge/config"
	"github.com/frankkopp/forkedge/position"
	. "github.com/frankkopp/forkedge/types"
)

func TestStartPositionIsBalanced(t *testing.T) {
	p := position.New()
	e := NewEvaluator()
	// The start position is symmetric, so the only non-zero contribution
	// can be the tempo bonus for White, the side to move.
	assert.EqualValues(t, config.Settings.Eval.Tempo, e.Evaluate(p))
}

func TestMaterialAdvantageIsPositiveForSideUp(t *testing.T) {
	// White has an extra queen.
	p, err := position.FromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	assert.NoError(t, err)
	e := NewEvaluator()
	assert.True(t, e.Evaluate(p) > Value(Queen.ValueOf()))
}

func TestEvaluationFlipsSignWithSideToMove(t *testing.T) {
	white, err := position.FromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	assert.NoError(t, err)
	black, err := position.FromFEN("4k3/8/8/8/8/8/8/3QK3 b - - 0 1")
	assert.NoError(t, err)
	e := NewEvaluator()

	tempo := Value(config.Settings.Eval.Tempo)
	whiteScore := e.Evaluate(white) - tempo
	blackScore := e.Evaluate(black) - tempo
	assert.Equal(t, whiteScore, -blackScore)
}

func TestMobilityFavorsTheSideWithMoreOpenLines(t *testing.T) {
	// A White rook in the center against a Black rook boxed in by its own
	// king and pawns has many more legal-looking attacked squares. Material
	// and the kings' and pawns' placement are mirrored, so mobility decides.
	p, err := position.FromFEN("5kr1/6pp/8/8/3R4/8/6PP/5K2 w - - 0 1")
	assert.NoError(t, err)
	e := NewEvaluator()
	assert.True(t, e.Evaluate(p) > 0)
}

func TestDisablingHeuristicsRemovesTheirContribution(t *testing.T) {
	p, err := position.FromFEN("r3k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	assert.NoError(t, err)
	e := NewEvaluator()

	savedPsqt, savedMobility := config.Settings.Eval.UsePsqt, config.Settings.Eval.UseMobility
	defer func() {
		config.Settings.Eval.UsePsqt, config.Settings.Eval.UseMobility = savedPsqt, savedMobility
	}()

	config.Settings.Eval.UsePsqt = false
	config.Settings.Eval.UseMobility = false
	withoutHeuristics := e.Evaluate(p)

	config.Settings.Eval.UsePsqt = true
	config.Settings.Eval.UseMobility = true
	withHeuristics := e.Evaluate(p)

	assert.NotEqual(t, withoutHeuristics, withHeuristics)
}
