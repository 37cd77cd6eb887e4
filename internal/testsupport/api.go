package testsupport

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Canned bodies used by FakeAPI. PlanetPath is appended to the server URL to
// form the homeworld link of the default character.
const (
	PlanetPath       = "/api/planets/1"
	EmptyPeopleBody  = `{"message":"ok","result":[]}`
	TatooineBody     = `{"message":"ok","result":{"properties":{"name":"Tatooine","population":"200000","rotation_period":"23","orbital_period":"304"}}}`
	lukeBodyTemplate = `{"message":"ok","result":[{"properties":{"name":"Luke Skywalker","height":"172","mass":"77","birth_year":"19BBY","homeworld":"%s"}}]}`
)

// FakeAPI is an httptest server standing in for the Star Wars API. It
// answers people searches and one planet, counting requests to each.
type FakeAPI struct {
	Server *httptest.Server

	mu           sync.Mutex
	peopleCalls  int
	planetCalls  int
	lastName     string
	peopleStatus int
	peopleBody   string
	planetStatus int
	planetBody   string
}

// NewFakeAPI starts a server that answers every people search with Luke
// Skywalker and the homeworld link with Tatooine.
func NewFakeAPI(t testing.TB) *FakeAPI {
	t.Helper()

	api := &FakeAPI{
		peopleStatus: http.StatusOK,
		planetStatus: http.StatusOK,
		planetBody:   TatooineBody,
	}
	api.Server = httptest.NewServer(http.HandlerFunc(api.serve))
	t.Cleanup(api.Server.Close)
	api.peopleBody = LukeBody(api.Server.URL + PlanetPath)
	return api
}

// LukeBody renders the default people search response with the given homeworld link.
func LukeBody(homeworld string) string {
	return fmt.Sprintf(lukeBodyTemplate, homeworld)
}

// BaseURL returns the API root to configure clients with.
func (a *FakeAPI) BaseURL() string {
	return a.Server.URL + "/api"
}

// SetPeople replaces the people search response.
func (a *FakeAPI) SetPeople(status int, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.peopleStatus = status
	a.peopleBody = body
}

// SetPlanet replaces the homeworld response.
func (a *FakeAPI) SetPlanet(status int, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.planetStatus = status
	a.planetBody = body
}

// PeopleCalls reports how many people searches were served.
func (a *FakeAPI) PeopleCalls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.peopleCalls
}

// PlanetCalls reports how many homeworld fetches were served.
func (a *FakeAPI) PlanetCalls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.planetCalls
}

// LastName returns the name query of the most recent people search.
func (a *FakeAPI) LastName() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastName
}

func (a *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	var status int
	var body string
	switch r.URL.Path {
	case "/api/people/":
		a.peopleCalls++
		a.lastName = r.URL.Query().Get("name")
		status, body = a.peopleStatus, a.peopleBody
	case PlanetPath:
		a.planetCalls++
		status, body = a.planetStatus, a.planetBody
	default:
		a.mu.Unlock()
		http.NotFound(w, r)
		return
	}
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
