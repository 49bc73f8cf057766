package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_Evite(t *testing.T) {
	r := NewTemplateRenderer()

	subject, html, text, err := r.Render("evite", map[string]string{
		"Name":      "Anita",
		"EventName": "Spring Picnic",
		"EventDate": "2026-04-18",
		"EventTime": "11:00 AM",
		"Venue":     "Riverside Park",
		"Message":   "Bring the whole family!",
	})
	require.NoError(t, err)

	assert.Equal(t, "You're Invited: Spring Picnic", subject)
	assert.Contains(t, html, "Dear Anita,")
	assert.Contains(t, html, "Spring Picnic")
	assert.Contains(t, html, "Riverside Park")
	assert.Contains(t, text, "Date: 2026-04-18")
	assert.Contains(t, text, "Bring the whole family!")
}

func TestTemplateRenderer_EviteOptionalFields(t *testing.T) {
	r := NewTemplateRenderer()

	_, html, text, err := r.Render("evite", map[string]string{
		"EventName": "Annual Meeting",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Hello,")
	assert.NotContains(t, text, "Date:")
	assert.NotContains(t, text, "Venue:")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()
	_, _, _, err := r.Render("missing", nil)
	require.Error(t, err)
}
