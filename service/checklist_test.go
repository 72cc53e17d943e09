package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklists(t *testing.T) {
	categories := ChecklistCategories()
	require.Len(t, categories, 4)
	assert.Equal(t, "Cheque Bounce (Sec 138 NI Act)", categories[0])

	list, err := ChecklistFor("Cyber Fraud")
	require.NoError(t, err)
	assert.Equal(t, []string{"Screenshots", "Bank Statement", "Email Header", "Identity Proof"}, list.Items)

	list.Items[0] = "changed"
	again, _ := ChecklistFor("Cyber Fraud")
	assert.Equal(t, "Screenshots", again.Items[0])

	_, err = ChecklistFor("Tax")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
