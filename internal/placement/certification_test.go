package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertifyStepOne(t *testing.T) {
	cases := []struct {
		score   int
		level   string
		proceed bool
	}{
		{0, CertFailed, false},
		{10, CertFailed, false},
		{24, CertFailed, false},
		{25, CertA1, false},
		{30, CertA1, false},
		{49, CertA1, false},
		{50, CertA2, false},
		{60, CertA2, false},
		{74, CertA2, false},
		{75, CertA2, true},
		{80, CertA2, true},
		{100, CertA2, true},
	}
	for _, tc := range cases {
		out, err := Certify(StepOne, tc.score)
		require.NoError(t, err, "score %d", tc.score)
		assert.Equal(t, tc.level, out.Level, "score %d", tc.score)
		assert.Equal(t, tc.proceed, out.ProceedToNextStep, "score %d", tc.score)
	}
}

func TestCertifyStepTwo(t *testing.T) {
	cases := []struct {
		score   int
		level   string
		proceed bool
	}{
		{0, CertA2, false},
		{24, CertA2, false},
		{25, CertB1, false},
		{49, CertB1, false},
		{50, CertB2, false},
		{60, CertB2, false},
		{74, CertB2, false},
		{75, CertB2, true},
		{100, CertB2, true},
	}
	for _, tc := range cases {
		out, err := Certify(StepTwo, tc.score)
		require.NoError(t, err, "score %d", tc.score)
		assert.Equal(t, tc.level, out.Level, "score %d", tc.score)
		assert.Equal(t, tc.proceed, out.ProceedToNextStep, "score %d", tc.score)
	}
}

func TestCertifyStepThree(t *testing.T) {
	cases := []struct {
		score int
		level string
	}{
		{0, CertB2},
		{24, CertB2},
		{25, CertC1},
		{49, CertC1},
		{50, CertC2}, // boundary is inclusive
		{75, CertC2},
		{100, CertC2},
	}
	for _, tc := range cases {
		out, err := Certify(StepThree, tc.score)
		require.NoError(t, err, "score %d", tc.score)
		assert.Equal(t, tc.level, out.Level, "score %d", tc.score)
	}
}

func TestCertifyStepThreeNeverAdvances(t *testing.T) {
	for score := 0; score <= 100; score++ {
		out, err := Certify(StepThree, score)
		require.NoError(t, err)
		assert.False(t, out.ProceedToNextStep, "score %d", score)
	}
}

func TestCertifyInvalidStep(t *testing.T) {
	for _, step := range []Step{0, 4, -7} {
		_, err := Certify(step, 50)
		assert.ErrorIs(t, err, ErrInvalidStep, "step %d", step)
	}
}

func TestNextStep(t *testing.T) {
	assert.Equal(t, StepTwo, NextStep(StepOne, Outcome{ProceedToNextStep: true}))
	assert.Equal(t, StepThree, NextStep(StepTwo, Outcome{ProceedToNextStep: true}))
	assert.Equal(t, Step(0), NextStep(StepOne, Outcome{}))
	assert.Equal(t, Step(0), NextStep(StepThree, Outcome{ProceedToNextStep: true}))
}
