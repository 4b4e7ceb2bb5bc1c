package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	doc := domain.SampleDocument(domain.Profile{
		ID: "user-1", Username: "Jane", Email: "jane@x.com", CreatedAt: 1700000000000,
	}, time.UnixMilli(1700000000000))
	doc.Videos[0].IsLocal = true

	data, err := Encode(doc)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_StampsCurrentVersionWithoutMutatingInput(t *testing.T) {
	doc := &domain.Document{}
	data, err := Encode(doc)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.EqualValues(t, domain.CurrentSchemaVersion, raw["schemaVersion"])
	assert.Equal(t, []any{}, raw["videos"])
	assert.Equal(t, 0, doc.SchemaVersion)
}

func TestEncode_LeavesProjectImagesUntouched(t *testing.T) {
	doc := &domain.Document{Projects: []domain.Project{{ID: "p1", Title: "T"}}}

	data, err := Encode(doc)
	require.NoError(t, err)

	assert.Nil(t, doc.Projects[0].Images)
	assert.Contains(t, string(data), `"images":[]`)
}

func TestDecode_LegacyDocumentWithoutVideos(t *testing.T) {
	legacy := `{
		"user": {"id": "user-1", "username": "Old", "email": "old@x.com", "createdAt": 1600000000000},
		"projects": [{"id": "p1", "title": "T", "description": "D", "date": "2020-01-01",
			"coverImage": "https://img/cover", "createdAt": 1600000000001}],
		"timeline": [],
		"about": {"content": "hi", "image": ""},
		"layoutPreferences": {"projectLayout": "masonry"}
	}`

	doc, err := Decode([]byte(legacy))
	require.NoError(t, err)

	assert.Equal(t, domain.CurrentSchemaVersion, doc.SchemaVersion)
	assert.Equal(t, "Old", doc.User.Username)
	assert.NotNil(t, doc.Videos)
	assert.Empty(t, doc.Videos)
	assert.Equal(t, domain.AboutVertical, doc.About.Layout)
	assert.Equal(t, domain.LayoutMasonry, doc.LayoutPreferences.ProjectLayout)
	assert.Equal(t, domain.LayoutMasonry, doc.LayoutPreferences.TimelineLayout)
	assert.True(t, doc.LayoutPreferences.ShowSampleContent)

	require.Len(t, doc.Projects, 1)
	assert.Equal(t, []string{"https://img/cover"}, doc.Projects[0].Images)
	assert.Equal(t, domain.Timestamp(1600000000001), doc.Projects[0].UpdatedAt)
}

func TestDecode_LegacyDocumentMissingSingletons(t *testing.T) {
	doc, err := Decode([]byte(`{"user": {"id": "u", "username": "x", "email": "y", "createdAt": 1}}`))
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultLayoutPreferences(), doc.LayoutPreferences)
	assert.Equal(t, domain.DefaultAbout(), doc.About)
	assert.NotNil(t, doc.Projects)
	assert.NotNil(t, doc.Timeline)
}

func TestDecode_RejectsNewerVersion(t *testing.T) {
	_, err := Decode([]byte(`{"schemaVersion": 99}`))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestDecode_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":       `{"user":`,
		"null":           `null`,
		"array":          `[]`,
		"string version": `{"schemaVersion": "one"}`,
		"bad project":    `{"projects": ["nope"]}`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(input))
			require.Error(t, err)
		})
	}

	_, err := Decode([]byte(`{"user":`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestMigrate_NoopAtCurrentVersion(t *testing.T) {
	raw := map[string]any{"videos": "left alone"}
	require.NoError(t, Migrate(raw, domain.CurrentSchemaVersion))
	assert.Equal(t, "left alone", raw["videos"])
}
