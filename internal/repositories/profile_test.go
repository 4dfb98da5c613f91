package repositories

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sbilibin2017/barterup-bff/internal/facades"
	"github.com/sbilibin2017/barterup-bff/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *facades.SupabaseClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return facades.NewSupabaseClient(srv.URL, "anon", "service", srv.Client())
}

func assertServiceKey(t *testing.T, r *http.Request) {
	t.Helper()
	assert.Equal(t, "service", r.Header.Get("apikey"))
	assert.Equal(t, "Bearer service", r.Header.Get("Authorization"))
}

func TestProfileRepository_Upsert(t *testing.T) {
	id := uuid.New()
	dob := "1990-06-15"

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/profiles", r.URL.Path)
		assert.Equal(t, "resolution=merge-duplicates,return=representation", r.Header.Get("Prefer"))
		assertServiceKey(t, r)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, id.String(), body["id"])
		assert.Equal(t, "1990-06-15", body["date_of_birth"])
		_, hasRole := body["role"]
		assert.False(t, hasRole)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":"` + id.String() + `","date_of_birth":"1990-06-15","primary_skill":"Music","skill_to_learn":"Art","bio":"Long enough bio","profile_picture_url":null,"role":"user"}]`))
	})

	repo := NewProfileRepository(client)
	got, err := repo.Upsert(context.Background(), models.ProfileUpsert{
		ID: id, DateOfBirth: &dob, PrimarySkill: "Music", SkillToLearn: "Art", Bio: "Long enough bio",
	})

	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Music", *got.PrimarySkill)
	assert.Nil(t, got.ProfilePictureURL)
}

func TestProfileRepository_Upsert_Role(t *testing.T) {
	id := uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.DefaultRole, body["role"])
		_, _ = w.Write([]byte(`[{"id":"` + id.String() + `","role":"user"}]`))
	})

	_, err := NewProfileRepository(client).Upsert(context.Background(), models.ProfileUpsert{ID: id, Role: models.DefaultRole})
	assert.NoError(t, err)
}

func TestProfileRepository_Upsert_NullDate(t *testing.T) {
	id := uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		v, present := body["date_of_birth"]
		assert.True(t, present)
		assert.Nil(t, v)
		_, _ = w.Write([]byte(`[{"id":"` + id.String() + `"}]`))
	})

	_, err := NewProfileRepository(client).Upsert(context.Background(), models.ProfileUpsert{ID: id})
	assert.NoError(t, err)
}

func TestProfileRepository_Upsert_Errors(t *testing.T) {
	t.Run("upstream", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"message":"duplicate key"}`))
		})
		_, err := NewProfileRepository(client).Upsert(context.Background(), models.ProfileUpsert{ID: uuid.New()})
		assert.Error(t, err)
	})

	t.Run("empty representation", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})
		_, err := NewProfileRepository(client).Upsert(context.Background(), models.ProfileUpsert{ID: uuid.New()})
		assert.Error(t, err)
	})
}

func TestProfileRepository_GetByID(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		status    int
		body      string
		wantFound bool
		wantErr   bool
	}{
		{"found", 200, `[{"id":"` + id.String() + `","bio":"hello world!"}]`, true, false},
		{"absent", 200, `[]`, false, false},
		{"upstream error", 500, `{"message":"boom"}`, false, true},
		{"bad json", 200, `{`, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "eq."+id.String(), r.URL.Query().Get("id"))
				assert.Equal(t, "*", r.URL.Query().Get("select"))
				assertServiceKey(t, r)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := NewProfileRepository(client).GetByID(context.Background(), id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantFound {
				require.NotNil(t, got)
				assert.Equal(t, id, got.ID)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestProfileRepository_GetRole(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		body     string
		wantRole string
		wantUser bool
	}{
		{"user", `[{"role":"user"}]`, "user", true},
		{"admin", `[{"role":"admin"}]`, "admin", false},
		{"null role", `[{"role":null}]`, "", false},
		{"no row", `[]`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "role", r.URL.Query().Get("select"))
				_, _ = w.Write([]byte(tt.body))
			})
			repo := NewProfileRepository(client)

			role, err := repo.GetRole(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, role)

			isUser, err := repo.IsRoleUser(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, isUser)
		})
	}
}

func TestProfileRepository_UpdatePicture(t *testing.T) {
	id := uuid.New()
	pic := "/api/uploads/profile_pictures/" + id.String() + "_profile.png"

	tests := []struct {
		name    string
		url     *string
		status  int
		wantErr bool
	}{
		{"set", &pic, http.StatusNoContent, false},
		{"clear", nil, http.StatusNoContent, false},
		{"failure", &pic, http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPatch, r.Method)
				assert.Equal(t, "eq."+id.String(), r.URL.Query().Get("id"))
				assert.Equal(t, "return=minimal", r.Header.Get("Prefer"))

				var body map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				if tt.url == nil {
					assert.Nil(t, body["profile_picture_url"])
				} else {
					assert.Equal(t, *tt.url, body["profile_picture_url"])
				}
				w.WriteHeader(tt.status)
			})

			err := NewProfileRepository(client).UpdatePicture(context.Background(), id, tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProfileRepository_Delete(t *testing.T) {
	id := uuid.New()

	for name, tc := range map[string]struct {
		body string
		want bool
	}{
		"deleted": {`[{"id":"` + id.String() + `"}]`, true},
		"missing": {`[]`, false},
	} {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
				_, _ = w.Write([]byte(tc.body))
			})

			got, err := NewProfileRepository(client).Delete(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
