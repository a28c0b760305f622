package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCareersCommand(t *testing.T) {
	out, err := run(t, "careers", "--mbti", "intj", "--interest", "IT/개발", "--count", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "1. 데이터 사이언티스트")
	assert.Contains(t, out, "3. 전략 컨설턴트")
	assert.NotContains(t, out, "4. ")
}

func TestCareersCommandUnknownType(t *testing.T) {
	_, err := run(t, "careers", "--mbti", "ABCD")
	assert.ErrorContains(t, err, "unknown personality type")
}

func TestResortsCommand(t *testing.T) {
	out, err := run(t, "resorts", "--mode", "자가용", "--max", "100", "--sources")
	require.NoError(t, err)
	assert.Contains(t, out, "곤지암리조트 스키장")
	assert.NotContains(t, out, "모나 용평 리조트")
	assert.Contains(t, out, "근거 힌트")

	out, err = run(t, "resorts", "--mode", "public", "--max", "60")
	require.NoError(t, err)
	assert.Contains(t, out, "이동수단을 바꿔보세요")

	_, err = run(t, "resorts", "--mode", "plane")
	assert.ErrorContains(t, err, "unknown travel mode")
}

func TestShoulderCommand(t *testing.T) {
	out, err := run(t, "shoulder", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "(통증호)")

	out, err = run(t, "shoulder", "--symptom", "팔을 옆으로 들어 올릴 때 중간 구간(약 60–120°)에서만 아픔 (통증호)", "--trauma")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "⚠️"))
	assert.Contains(t, out, "진단을 대신하지 않습니다")
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "types=16")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "careers.yaml"), []byte("interests: []\ntypes: []\n"), 0o644))
	_, err = run(t, "validate", "--dir", dir)
	assert.Error(t, err)
}
