package core

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderings(t *testing.T) {
	tests := []struct {
		in   string
		want []Ordering
	}{
		{in: ""},
		{in: "title", want: []Ordering{{Field: "title", Ascending: true}}},
		{in: "-created_at, title ,", want: []Ordering{{Field: "created_at"}, {Field: "title", Ascending: true}}},
		{in: "-", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseOrderings(tt.in)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "-created_at", Ordering{Field: "created_at"}.String())
}

func TestParseTimestamp(t *testing.T) {
	local := func(s string) time.Time {
		tm, err := time.ParseInLocation("2006-01-02T15:04", s, time.Local)
		require.NoError(t, err)
		return tm.UTC()
	}

	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2024-12-20T09:00:00Z", want: time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC)},
		{in: "2024-12-20T10:00:00+01:00", want: time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC)},
		{in: "2024-12-20T09:00", want: local("2024-12-20T09:00")},
		{in: " 2024-12-20 09:00 ", want: local("2024-12-20T09:00")},
		{in: "2024-12-20T09:00:00", want: local("2024-12-20T09:00")},
		{in: "", wantErr: true},
		{in: "20/12/2024", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestCleanString(t *testing.T) {
	assert.Equal(t, "Math", CleanString("  Math\t"))
	assert.Equal(t, "math", CleanString(" Math ", true))
}

func TestInitValidators(t *testing.T) {
	validate := validator.New()
	translator := NewTranslator()
	InitValidators(validate, translator)

	type form struct {
		Name string `json:"name" validate:"notblank"`
		When string `json:"when" validate:"required,timestamp"`
	}

	err := validate.Struct(form{Name: "  ", When: "lol"})
	require.Error(t, err)
	vErrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	msgs := make(map[string]string)
	for _, fe := range vErrs {
		msgs[fe.Field()] = fe.Translate(translator)
	}
	assert.Equal(t, "this field cannot be blank", msgs["name"])
	assert.Equal(t, "invalid date/time", msgs["when"])
	assert.Len(t, msgs, 2)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(nil, FieldError{Field: "title", Error: "this field cannot be blank"})
	assert.Equal(t, "title: this field cannot be blank", err.Error())
}

func TestNewConfig(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("TEST_SERVER_ADDRESS", ":9000")

	conf := NewConfig()
	assert.Equal(t, "TEST", conf.Env)
	assert.True(t, conf.TestMode)
	assert.Equal(t, ":9000", conf.Server.Address)
	assert.Equal(t, 5*time.Second, conf.Server.ShutdownTimeout)
	assert.Equal(t, SessionDriverMemory, conf.Session.Driver)
}
