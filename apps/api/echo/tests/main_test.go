package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/examdesk/apps/api/echo"
	"github.com/trezcool/examdesk/core"
	"github.com/trezcool/examdesk/core/dashboard"
	"github.com/trezcool/examdesk/core/user"
	logsvc "github.com/trezcool/examdesk/services/logger"
	inmemdb "github.com/trezcool/examdesk/storage/database/inmem"
	"github.com/trezcool/examdesk/tests"
)

const nobody = "-" // httpTest.as value for requests without a current user

var conf = &core.Config{
	Env:      "TEST",
	TestMode: true,
	Server:   core.ServerConfig{DisableReqLogs: true},
	Session:  core.SessionConfig{Driver: core.SessionDriverMemory},
}

type testApp struct {
	Server
	db      *inmemdb.DB
	session *user.Session
}

// setup starts a server on a fresh copy of the fixtures, with time frozen at testutil.FixtureNow.
func setup(t *testing.T) *testApp {
	db := testutil.PrepareDB(t)
	testutil.MockNow(t, testutil.FixtureNow)

	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf)
	logger.Enable(false)

	validate, translator := testutil.NewValidator()
	users := inmemdb.NewUserRepository(db)
	session := testutil.NewSession(t, db)
	examSvc := testutil.NewExamService(db, validate)

	return &testApp{
		Server: NewServer(Deps{
			Conf:         conf,
			Logger:       logger,
			Translator:   translator,
			Session:      session,
			Users:        users,
			ExamSvc:      examSvc,
			DashboardSvc: dashboard.NewService(users, examSvc),
		}),
		db:      db,
		session: session,
	}
}

// actAs makes the user with the given ID the current one; nobody logs out.
func (app *testApp) actAs(t *testing.T, id string) {
	switch id {
	case "":
	case nobody:
		if res := app.session.Logout(); !res.Success {
			t.Fatalf("Logout() failed: %s", res.Error)
		}
	default:
		if _, err := app.session.SwitchRole(id); err != nil {
			t.Fatalf("SwitchRole(%q) failed: %v", id, err)
		}
	}
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	as       string // current user ID
	wantCode int
	wantData []byte
}

func (app *testApp) do(t *testing.T, tt httpTest) *httptest.ResponseRecorder {
	app.actAs(t, tt.as)

	method := tt.method
	if method == "" {
		method = http.MethodGet
	}
	req, rec := newRequest(method, tt.path, tt.body)
	app.ServeHTTP(rec, req)
	return rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList(): %v", err)
	}
	return data
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	wantCode := tt.wantCode
	if wantCode == 0 {
		wantCode = http.StatusOK
	}
	assert.Equal(t, wantCode, rec.Code, "code")
	if tt.wantData != nil {
		assert.JSONEq(t, string(tt.wantData), rec.Body.String(), "data")
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decoding %q: %v", rec.Body.String(), err)
	}
}
