package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceCreateAndList(t *testing.T) {
	r, _ := setupTest()

	body := `{"title":"Khan Academy Algebra","url":"https://khanacademy.org/algebra","topic":"algebra"}`
	resp := doJSON(t, r, http.MethodPost, "/api/resources", body)
	require.Equal(t, http.StatusCreated, resp.Code)

	var created map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	require.NotEmpty(t, created["id"])

	resp = doJSON(t, r, http.MethodGet, "/api/resources", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	require.Len(t, list, 1)
	got := list[0]
	assert.Equal(t, created["id"], got["id"])
	assert.Equal(t, "Khan Academy Algebra", got["title"])
	assert.Equal(t, "https://khanacademy.org/algebra", got["url"])
	assert.Equal(t, "algebra", got["topic"])
	assert.Nil(t, got["description"])
}

func TestResourceTitleRequired(t *testing.T) {
	r, _ := setupTest()

	resp := doJSON(t, r, http.MethodPost, "/api/resources", `{"topic":"algebra"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestResourceTopicFilter(t *testing.T) {
	r, _ := setupTest()

	doJSON(t, r, http.MethodPost, "/api/resources", `{"title":"Algebra notes","topic":"algebra"}`)
	doJSON(t, r, http.MethodPost, "/api/resources", `{"title":"Optics slides","topic":"optics"}`)
	doJSON(t, r, http.MethodPost, "/api/resources", `{"title":"Untagged link"}`)

	resp := doJSON(t, r, http.MethodGet, "/api/resources?topic=algebra", "")
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Algebra notes", list[0]["title"])

	// unfiltered listing returns everything
	resp = doJSON(t, r, http.MethodGet, "/api/resources", "")
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	assert.Len(t, list, 3)
}

func TestResourceDelete(t *testing.T) {
	r, _ := setupTest()

	resp := doJSON(t, r, http.MethodPost, "/api/resources", `{"title":"To remove"}`)
	var created map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))

	resp = doJSON(t, r, http.MethodDelete, "/api/resources/zzz", "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(t, r, http.MethodDelete, "/api/resources/"+created["id"], "")
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, r, http.MethodDelete, "/api/resources/"+created["id"], "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
