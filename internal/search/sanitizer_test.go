package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanFormLabelTruncatesToEnd(t *testing.T) {
	got := Clean("Great role. Email: jane@x.com. More perks.")
	assert.Equal(t, "Great role.", got)
}

func TestCleanApplySpan(t *testing.T) {
	got := Clean("Apply here, fill everything in, then Submit Application Senior Go dev")
	assert.Equal(t, "Senior Go dev", got)

	got = Clean("candidatar a esta vaga preencha o formulário enviar inscrição Vaga Go")
	assert.Equal(t, "Vaga Go", got)
}

func TestCleanRemovesOnlyFirstApplySpan(t *testing.T) {
	got := Clean("apply a submit application keep apply b submit application")
	assert.Contains(t, got, "apply b submit application")
	assert.Contains(t, got, "keep")
	assert.NotContains(t, got, "apply a")
}

func TestCleanMenuPhrases(t *testing.T) {
	got := Clean("Back to Jobs Go Engineer, fully remote")
	assert.Equal(t, "Go Engineer, fully remote", got)

	got = Clean("Voltar para vagas Engenheiro Go")
	assert.Equal(t, "Engenheiro Go", got)
}

func TestCleanCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", Clean("  a \n\t b   c  "))
}

func TestCleanEmpty(t *testing.T) {
	assert.Equal(t, "", Clean(""))
	assert.Equal(t, "", Clean("   "))
}
