package lostark_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/raid-gold-api/internal/clients/lostark"
	"github.com/KirkDiggler/raid-gold-api/internal/errors"
)

const siblingsBody = `[
	{"ServerName": "Azena", "CharacterName": "Bob", "CharacterLevel": 60, "CharacterClassName": "Berserker", "ItemAvgLevel": "1,620.00", "ItemMaxLevel": "1,620.83"},
	{"ServerName": "Azena", "CharacterName": "Bob_Alt", "CharacterLevel": 60, "CharacterClassName": "Bard", "ItemAvgLevel": "1,540.00", "ItemMaxLevel": "1,545.00"}
]`

type ClientTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	client  lostark.Client
	ctx     context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))

	client, err := lostark.New(&lostark.Config{
		APIKey:  "test-key",
		BaseURL: s.server.URL,
	})
	s.Require().NoError(err)
	s.client = client
	s.ctx = context.Background()
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) TestGetSiblings() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/characters/Bob/siblings", r.URL.Path)
		s.Equal("bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(siblingsBody))
	}

	roster, err := s.client.GetSiblings(s.ctx, "Bob")

	s.Require().NoError(err)
	s.Require().Len(roster, 2)
	s.Equal("Bob", roster[0].Name)
	s.Equal("Berserker", roster[0].ClassName)
	s.InDelta(1620.83, roster[0].ItemLevel, 0.001)
	s.InDelta(1545.0, roster[1].ItemLevel, 0.001)
}

func (s *ClientTestSuite) TestGetSiblingsEscapesName() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/characters/Bob Smith/siblings", r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	}

	roster, err := s.client.GetSiblings(s.ctx, "Bob Smith")

	s.Require().NoError(err)
	s.Empty(roster)
}

func (s *ClientTestSuite) TestGetSiblingsUnknownCharacter() {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}

	roster, err := s.client.GetSiblings(s.ctx, "Nobody")

	s.Require().NoError(err)
	s.Empty(roster)
}

func (s *ClientTestSuite) TestGetSiblingsErrors() {
	testCases := []struct {
		name    string
		status  int
		body    string
		checkFn func(error) bool
		wantMsg string
	}{
		{
			name:    "unauthorized with api body",
			status:  http.StatusUnauthorized,
			body:    `{"Code": 401, "Message": "Invalid token"}`,
			wantMsg: "Invalid token",
		},
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			checkFn: errors.IsResourceExhausted,
			wantMsg: "rate limit exceeded",
		},
		{
			name:    "maintenance",
			status:  http.StatusServiceUnavailable,
			checkFn: errors.IsUnavailable,
			wantMsg: "maintenance",
		},
		{
			name:    "wrong shape",
			status:  http.StatusOK,
			body:    `{"not": "a list"}`,
			checkFn: errors.IsUnavailable,
			wantMsg: "unexpected response shape",
		},
		{
			name:    "malformed item level",
			status:  http.StatusOK,
			body:    `[{"CharacterName": "Bob", "ItemMaxLevel": "high"}]`,
			checkFn: errors.IsUnavailable,
			wantMsg: "malformed item level",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.handler = func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}

			roster, err := s.client.GetSiblings(s.ctx, "Bob")

			s.Require().Error(err)
			s.Nil(roster)
			s.Contains(err.Error(), tc.wantMsg)
			if tc.checkFn != nil {
				s.True(tc.checkFn(err))
			}
		})
	}
}

func (s *ClientTestSuite) TestGetSiblingsServerDown() {
	s.server.Close()

	_, err := s.client.GetSiblings(s.ctx, "Bob")

	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *ClientTestSuite) TestGetSiblingsRequiresName() {
	_, err := s.client.GetSiblings(s.ctx, "  ")

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestNewRequiresAPIKey() {
	_, err := lostark.New(&lostark.Config{})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "APIKey")
}

func (s *ClientTestSuite) TestParseItemLevel() {
	testCases := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{raw: "1,620.83", want: 1620.83},
		{raw: "1,234,567.5", want: 1234567.5},
		{raw: "460", want: 460},
		{raw: "", wantErr: true},
		{raw: "n/a", wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.raw, func() {
			got, err := lostark.ParseItemLevel(tc.raw)
			if tc.wantErr {
				s.Error(err)
				return
			}
			s.Require().NoError(err)
			s.InDelta(tc.want, got, 0.0001)
		})
	}
}
