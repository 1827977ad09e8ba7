package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorPatch_Unmarshal(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantName  Optional[string]
		wantAbout Optional[string]
		wantEmpty bool
	}{
		{"empty object", `{}`, Optional[string]{}, Optional[string]{}, true},
		{"explicit null is absent", `{"name": null}`, Optional[string]{}, Optional[string]{}, true},
		{"empty string is present", `{"name": ""}`, Some(""), Optional[string]{}, false},
		{"only about", `{"about": "x"}`, Optional[string]{}, Some("x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p AuthorPatch
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &p))
			assert.Equal(t, tt.wantName, p.Name)
			assert.Equal(t, tt.wantAbout, p.About)
			assert.Equal(t, tt.wantEmpty, p.IsEmpty())
		})
	}
}

func TestOptional_RejectsWrongType(t *testing.T) {
	var p CategoryPatch

	err := json.Unmarshal([]byte(`{"catName": 42}`), &p)

	assert.Error(t, err)
}

func TestOptional_Marshal(t *testing.T) {
	out, err := json.Marshal(CategoryPatch{Descr: Some("x")})

	require.NoError(t, err)
	assert.JSONEq(t, `{"catName": null, "descr": "x"}`, string(out))
}
