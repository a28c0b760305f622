package careers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guide-backend/internal/shared/config"
)

func TestServiceRecommend(t *testing.T) {
	svc := NewService(loadBundle(t), config.CareersConfig{})

	res, err := svc.Recommend(context.Background(), " intj ", []string{"IT/개발", " IT/개발"}, 3)
	require.NoError(t, err)
	assert.True(t, res.Scored)
	assert.Equal(t, "INTJ", res.Pack.Code)
	assert.Equal(t, []string{"IT/개발"}, res.Interests)
	require.Len(t, res.Cards, 3)
	assert.Equal(t, 1, res.Cards[0].Rank)
	assert.Equal(t, "데이터 사이언티스트", res.Cards[0].Name)
	assert.Equal(t, res.Pack.Environments[0], res.Cards[0].Environment)
	assert.Equal(t, res.Pack.StudyTips[1%len(res.Pack.StudyTips)], res.Cards[1].StudyTip)
}

func TestServiceRecommendDefaultsAndErrors(t *testing.T) {
	svc := NewService(loadBundle(t), config.CareersConfig{MatchWeight: 2, DefaultCount: 4})

	res, err := svc.Recommend(context.Background(), "ENFP", nil, 0)
	require.NoError(t, err)
	assert.Len(t, res.Cards, 4)

	_, err = svc.Recommend(context.Background(), "ABCD", nil, 3)
	assert.True(t, errors.Is(err, ErrUnknownType))

	_, err = svc.Recommend(context.Background(), "ENFP", nil, 31)
	assert.True(t, errors.Is(err, ErrInvalidCount))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Recommend(ctx, "ENFP", nil, 3)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestServicePreview(t *testing.T) {
	svc := NewService(loadBundle(t), config.CareersConfig{})

	res, err := svc.Preview("ISTJ")
	require.NoError(t, err)
	assert.False(t, res.Scored)
	require.NotEmpty(t, res.Cards)
	assert.Equal(t, res.Pack.Careers[0], res.Cards[0].Name)
	assert.LessOrEqual(t, len(res.Cards), DefaultViewSize)
}

func TestValidTypeCode(t *testing.T) {
	assert.True(t, ValidTypeCode("intj"))
	assert.True(t, ValidTypeCode("ESFP"))
	assert.False(t, ValidTypeCode("INTX"))
	assert.False(t, ValidTypeCode("INT"))
}
