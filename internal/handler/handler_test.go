package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lorewright/internal/handler"
	"lorewright/internal/mocks"
	"lorewright/internal/model"
	"lorewright/internal/service"
	"lorewright/internal/vectorstore"
)

type testEnv struct {
	router     *gin.Engine
	auth       *mocks.MockAuthService
	characters *mocks.MockCharacterGenerator
	worlds     *mocks.MockWorldGenerator
	campaigns  *mocks.MockCampaignGenerator
	store      *mocks.MockStore
	assetDir   string
}

func newTestEnv(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		auth:       mocks.NewMockAuthService(t),
		characters: mocks.NewMockCharacterGenerator(t),
		worlds:     mocks.NewMockWorldGenerator(t),
		campaigns:  mocks.NewMockCampaignGenerator(t),
		store:      mocks.NewMockStore(t),
		assetDir:   t.TempDir(),
	}

	h := handler.NewHandler(env.auth, env.characters, env.worlds, env.campaigns, env.store, env.assetDir, zap.NewNop())
	env.router = gin.New()
	h.RegisterRoutes(env.router)
	return env
}

func (env *testEnv) do(t *testing.T, method, path string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()
	var errResp model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	return errResp
}

func storedDocument(t *testing.T, entity any, id, name string) vectorstore.Document {
	t.Helper()
	raw, err := json.Marshal(entity)
	require.NoError(t, err)
	return vectorstore.Document{ID: id, Name: name, Body: string(raw)}
}

func TestCreateCharacter(t *testing.T) {
	env := newTestEnv(t)

	generated := model.Character{
		ID:            uuid.New(),
		Name:          "Elina",
		Gender:        "female",
		Race:          "Dwarf",
		Alignment:     "Neutral",
		Appearance:    "A stocky dwarf with braided copper hair.",
		Personality:   "Gruff but loyal.",
		Backstory:     "Forged in the deep halls.",
		Universe:      "Dungeons and Dragons",
		WorldTheme:    "fantasy",
		Tone:          "epic",
		ImageFilename: "character_image_" + uuid.NewString() + ".png",
	}
	env.characters.On("Generate", mock.Anything, mock.MatchedBy(func(c model.CharacterCreation) bool {
		return c.Name == "Elina" && c.Race == "Dwarf" && c.Appearance == ""
	})).Return(generated, nil).Once()

	rec := env.do(t, http.MethodPost, "/characters", gin.H{
		"name": "Elina", "gender": "female", "race": "Dwarf",
		"universe": "dnd", "world_theme": "fantasy", "tone": "epic",
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got model.Character
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Elina", got.Name)
	assert.Equal(t, "Dwarf", got.Race)
	assert.NotEmpty(t, got.Appearance)
	assert.NotEmpty(t, got.ImageFilename)
	env.characters.AssertExpectations(t)
}

func TestCreateCharacterGenerationFailure(t *testing.T) {
	env := newTestEnv(t)

	env.characters.On("Generate", mock.Anything, mock.AnythingOfType("model.CharacterCreation")).
		Return(model.Character{}, fmt.Errorf("generate appearance: %w: %w", model.ErrGenerationFailed, assert.AnError)).Once()

	rec := env.do(t, http.MethodPost, "/characters", gin.H{
		"name": "Elina", "gender": "female", "race": "Dwarf",
		"universe": "dnd", "world_theme": "fantasy", "tone": "epic",
	}, nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	errResp := decodeError(t, rec)
	assert.Equal(t, "Content generation failed", errResp.Error)
	assert.Equal(t, http.StatusInternalServerError, errResp.StatusCode)
}

func TestCreateCharacterMissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/characters", gin.H{"name": "Elina"}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errResp := decodeError(t, rec)
	assert.Equal(t, http.StatusBadRequest, errResp.StatusCode)
	env.characters.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestGetCharacterNotFound(t *testing.T) {
	env := newTestEnv(t)

	unknownID := uuid.NewString()
	env.store.On("GetByID", mock.Anything, vectorstore.CollectionCharacters, unknownID).
		Return(vectorstore.Document{}, model.ErrNotFound).Once()

	rec := env.do(t, http.MethodGet, "/characters/"+unknownID, nil, nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	errResp := decodeError(t, rec)
	assert.Contains(t, strings.ToLower(errResp.Error), "not found")
	assert.Equal(t, http.StatusNotFound, errResp.StatusCode)
}

func TestGetCharacter(t *testing.T) {
	env := newTestEnv(t)

	character := model.Character{ID: uuid.New(), Name: "Elina", Race: "Dwarf"}
	env.store.On("GetByID", mock.Anything, vectorstore.CollectionCharacters, character.ID.String()).
		Return(storedDocument(t, character, character.ID.String(), character.Name), nil).Once()

	rec := env.do(t, http.MethodGet, "/characters/"+character.ID.String(), nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got model.Character
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, character.ID, got.ID)
	assert.Equal(t, "Elina", got.Name)
}

func TestSearchCharacters(t *testing.T) {
	env := newTestEnv(t)

	first := model.Character{ID: uuid.New(), Name: "Elina"}
	second := model.Character{ID: uuid.New(), Name: "Borin"}
	env.store.On("SearchSimilar", mock.Anything, vectorstore.CollectionCharacters, "dwarf smith", 2).
		Return([]vectorstore.Match{
			{Document: storedDocument(t, first, first.ID.String(), first.Name), Distance: 0.1},
			{Document: storedDocument(t, second, second.ID.String(), second.Name), Distance: 0.3},
		}, nil).Once()

	rec := env.do(t, http.MethodGet, "/characters/search?query=dwarf+smith", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []model.Character
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Elina", got[0].Name)
}

func TestSearchRequiresQuery(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/characters/search", nil, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env.store.AssertNotCalled(t, "SearchSimilar", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListWorlds(t *testing.T) {
	env := newTestEnv(t)

	world := model.World{ID: uuid.New(), Name: "Ashfall", Universe: "homebrew"}
	env.store.On("GetAllWorlds", mock.Anything).
		Return([]vectorstore.Document{storedDocument(t, world, world.ID.String(), world.Name)}, nil).Once()

	rec := env.do(t, http.MethodGet, "/worlds", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []model.World
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Ashfall", got[0].Name)
}

func TestCreateCampaign(t *testing.T) {
	env := newTestEnv(t)

	generated := model.Campaign{
		ID:             uuid.New(),
		Name:           "The Long Night",
		Universe:       "homebrew",
		WorldTheme:     "fantasy",
		Tone:           "grim",
		Campaign:       "A war against the dark.",
		HiddenElements: "The king is already dead.",
	}
	env.campaigns.On("Generate", mock.Anything, mock.AnythingOfType("model.CampaignCreation")).
		Return(generated, nil).Once()

	rec := env.do(t, http.MethodPost, "/campaigns", gin.H{
		"name": "The Long Night", "universe": "homebrew", "world_theme": "fantasy", "tone": "grim",
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got model.Campaign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "The king is already dead.", got.HiddenElements)
}

func TestSignupDuplicate(t *testing.T) {
	env := newTestEnv(t)

	env.auth.On("Register", mock.Anything, mock.AnythingOfType("model.UserCreation")).
		Return(&model.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com", IsActive: true}, nil).Once()
	env.auth.On("Register", mock.Anything, mock.AnythingOfType("model.UserCreation")).
		Return(nil, model.ErrUserAlreadyExists).Once()

	body := gin.H{"username": "alice", "email": "alice@example.com", "password": "password1"}

	rec := env.do(t, http.MethodPost, "/users", body, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/users", body, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errResp := decodeError(t, rec)
	assert.Contains(t, errResp.Error, "already exists")
	assert.Equal(t, http.StatusBadRequest, errResp.StatusCode)
}

func TestSignupRejectsWeakPassword(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/users", gin.H{
		"username": "alice", "email": "alice@example.com", "password": "short",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env.auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestSigninSetsCookie(t *testing.T) {
	env := newTestEnv(t)

	token := &model.UserToken{AccessToken: "signed-token", TokenType: "bearer", ExpiresAt: 4102444800}
	env.auth.On("Login", mock.Anything, "alice", "password1").Return(token, nil).Once()

	rec := env.do(t, http.MethodPost, "/signin", gin.H{"username": "alice", "password": "password1"}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got model.UserToken
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "bearer", got.TokenType)
	assert.Equal(t, "signed-token", got.AccessToken)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "access_token", cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSigninInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)

	env.auth.On("Login", mock.Anything, "alice", "wrong-pass1").
		Return(nil, model.ErrInvalidCredentials).Once()

	rec := env.do(t, http.MethodPost, "/signin", gin.H{"username": "alice", "password": "wrong-pass1"}, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	errResp := decodeError(t, rec)
	assert.Equal(t, http.StatusUnauthorized, errResp.StatusCode)
}

func TestMeWithBearerToken(t *testing.T) {
	env := newTestEnv(t)

	userID := uuid.New()
	env.auth.On("VerifyAccessToken", mock.Anything, "valid-token").
		Return(&service.Claims{UserID: userID}, nil).Once()
	env.auth.On("Me", mock.Anything, mock.AnythingOfType("*service.Claims")).
		Return(&model.User{ID: userID, Username: "alice", Email: "alice@example.com", IsActive: true}, nil).Once()

	rec := env.do(t, http.MethodGet, "/me", nil, http.Header{"Authorization": []string{"Bearer valid-token"}})

	require.Equal(t, http.StatusOK, rec.Code)
	var got model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "alice", got.Username)
}

func TestMeWithoutToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/me", nil, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env.auth.AssertNotCalled(t, "VerifyAccessToken", mock.Anything, mock.Anything)
}

func TestSignoutRevokesAndClearsCookie(t *testing.T) {
	env := newTestEnv(t)

	accessUUID := uuid.NewString()
	env.auth.On("VerifyAccessToken", mock.Anything, "valid-token").
		Return(&service.Claims{
			UserID:           uuid.New(),
			RegisteredClaims: jwt.RegisteredClaims{ID: accessUUID},
		}, nil).Once()
	env.auth.On("Signout", mock.Anything, accessUUID).Return(nil).Once()

	rec := env.do(t, http.MethodPost, "/signout", nil, http.Header{"Authorization": []string{"Bearer valid-token"}})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed out")

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "access_token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
	env.auth.AssertExpectations(t)
}

func TestSignoutWithoutToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/signout", nil, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env.auth.AssertNotCalled(t, "Signout", mock.Anything, mock.Anything)
}

func TestCharacterPDF(t *testing.T) {
	env := newTestEnv(t)

	character := model.Character{ID: uuid.New(), Name: "Elina", Race: "Dwarf", Backstory: "Forged in the deep halls."}
	env.store.On("GetByID", mock.Anything, vectorstore.CollectionCharacters, character.ID.String()).
		Return(storedDocument(t, character, character.ID.String(), character.Name), nil).Once()

	rec := env.do(t, http.MethodGet, "/pdf/character/"+character.ID.String(), nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "%PDF", rec.Body.String()[:4])
}

func TestGetAsset(t *testing.T) {
	env := newTestEnv(t)

	filename := "character_image_" + uuid.NewString() + ".png"
	require.NoError(t, os.WriteFile(filepath.Join(env.assetDir, filename), []byte{0x89, 0x50, 0x4e, 0x47}, 0o644))

	rec := env.do(t, http.MethodGet, "/assets/"+filename, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, rec.Body.Bytes())

	rec = env.do(t, http.MethodGet, "/assets/missing.png", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
