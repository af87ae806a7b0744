package catalog_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-retool/internal/errors"
	"github.com/KirkDiggler/rpg-retool/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-retool/internal/testutils"
	"github.com/KirkDiggler/rpg-retool/internal/testutils/builders"
)

type RedisCatalogTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo catalog.Repository
	ctx  context.Context
}

func (s *RedisCatalogTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.ctx = context.Background()

	repo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisCatalogTestSuite) TestNewRedis() {
	testCases := []struct {
		name   string
		config *catalog.RedisConfig
		errMsg string
	}{
		{
			name:   "error with nil config",
			config: nil,
			errMsg: "config cannot be nil",
		},
		{
			name:   "error with nil client",
			config: &catalog.RedisConfig{},
			errMsg: "client cannot be nil",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := catalog.NewRedis(tc.config)
			s.Error(err)
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(repo)
		})
	}
}

func (s *RedisCatalogTestSuite) TestPutAndGet() {
	batch := builders.NewBatchBuilder().
		WithID("batch-1").
		WithKind("feat").
		WithRecords(`[{"name":"Alert"}]`, 1).
		Build()

	out, err := s.repo.Put(s.ctx, catalog.PutInput{Batch: batch})
	s.Require().NoError(err)
	s.Equal("catalog:feat:batch-1", out.Key)
	s.True(s.mr.Exists("catalog:feat:batch-1"))

	got, err := s.repo.Get(s.ctx, catalog.GetInput{Kind: "feat", ID: "batch-1"})
	s.Require().NoError(err)
	s.Equal(batch.ID, got.Batch.ID)
	s.Equal(batch.Kind, got.Batch.Kind)
	s.Equal(batch.Source, got.Batch.Source)
	s.Equal(1, got.Batch.Count)
	s.True(batch.CreatedAt.Equal(got.Batch.CreatedAt))
	s.JSONEq(`[{"name":"Alert"}]`, string(got.Batch.Records))
}

func (s *RedisCatalogTestSuite) TestPutValidation() {
	testCases := []struct {
		name   string
		batch  *catalog.Batch
		errMsg string
	}{
		{name: "nil batch", batch: nil, errMsg: "batch cannot be nil"},
		{name: "missing kind", batch: &catalog.Batch{ID: "x"}, errMsg: "kind"},
		{name: "missing id", batch: &catalog.Batch{Kind: "race"}, errMsg: "id"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Put(s.ctx, catalog.PutInput{Batch: tc.batch})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *RedisCatalogTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, catalog.GetInput{Kind: "race", ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisCatalogTestSuite) TestGetCorruptData() {
	s.Require().NoError(s.mr.Set(catalog.BatchKey("race", "bad"), "{not json"))

	_, err := s.repo.Get(s.ctx, catalog.GetInput{Kind: "race", ID: "bad"})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *RedisCatalogTestSuite) TestListIDsNewestFirst() {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		batch := builders.NewBatchBuilder().
			WithID(id).
			WithKind("race").
			WithCreatedAt(base.Add(time.Duration(i) * time.Minute)).
			Build()
		_, err := s.repo.Put(s.ctx, catalog.PutInput{Batch: batch})
		s.Require().NoError(err)
	}

	s.Run("all", func() {
		out, err := s.repo.ListIDs(s.ctx, catalog.ListIDsInput{Kind: "race"})
		s.Require().NoError(err)
		s.Equal([]string{"new", "mid", "old"}, out.IDs)
	})

	s.Run("limited", func() {
		out, err := s.repo.ListIDs(s.ctx, catalog.ListIDsInput{Kind: "race", Limit: 2})
		s.Require().NoError(err)
		s.Equal([]string{"new", "mid"}, out.IDs)
	})

	s.Run("other kind is empty", func() {
		out, err := s.repo.ListIDs(s.ctx, catalog.ListIDsInput{Kind: "feat"})
		s.Require().NoError(err)
		s.Empty(out.IDs)
	})

	s.Run("empty kind", func() {
		_, err := s.repo.ListIDs(s.ctx, catalog.ListIDsInput{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisCatalogTestSuite) TestStorageFailure() {
	s.mr.SetError("server unavailable")
	defer s.mr.SetError("")

	_, err := s.repo.Get(s.ctx, catalog.GetInput{Kind: "feat", ID: "x"})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *RedisCatalogTestSuite) TestBatchJSONShape() {
	batch := builders.NewBatchBuilder().WithID("a").WithKind("feat").Build()
	data, err := json.Marshal(batch)
	s.Require().NoError(err)
	s.Contains(string(data), `"created_at"`)
	s.Contains(string(data), `"records":[]`)
}

func TestRedisCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(RedisCatalogTestSuite))
}
