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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveEncoding(t *testing.T) {
	tests := []struct {
		name  string
		from  Square
		to    Square
		promo PieceType
		mt    MoveType
	}{
		{"double push", SqE2, SqE4, PtNone, DoublePush},
		{"capture", SqE4, SqD5, PtNone, Capture},
		{"promotion", SqE7, SqE8, Queen, Promotion},
		{"promo capture", SqD7, SqE8, Knight, PromotionCapture},
		{"en passant", SqE5, SqD6, PtNone, EnPassant},
		{"castle", SqE1, SqG1, PtNone, Castle},
	}
	for _, tt := range tests {
		m := NewMove(tt.from, tt.to, tt.promo, tt.mt)
		assert.Equal(t, tt.from, m.From(), tt.name)
		assert.Equal(t, tt.to, m.To(), tt.name)
		assert.Equal(t, tt.mt, m.Type(), tt.name)
		if tt.mt == Promotion || tt.mt == PromotionCapture {
			assert.Equal(t, tt.promo, m.PromotionType(), tt.name)
		}
	}
}

func TestMoveNoneIsInvalid(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
	m := NewMove(SqE2, SqE4, PtNone, Quiet)
	assert.True(t, m.IsValid())
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "e2e4", NewMove(SqE2, SqE4, PtNone, DoublePush).String())
	assert.Equal(t, "e7e8q", NewMove(SqE7, SqE8, Queen, Promotion).String())
	assert.Equal(t, "-", MoveNone.String())
}

func TestIsCaptureIsPromotion(t *testing.T) {
	assert.True(t, NewMove(SqE4, SqD5, PtNone, Capture).IsCapture())
	assert.True(t, NewMove(SqE5, SqD6, PtNone, EnPassant).IsCapture())
	assert.True(t, NewMove(SqD7, SqE8, Queen, PromotionCapture).IsCapture())
	assert.True(t, NewMove(SqD7, SqE8, Queen, PromotionCapture).IsPromotion())
	assert.False(t, NewMove(SqE2, SqE3, PtNone, Quiet).IsCapture())
}
