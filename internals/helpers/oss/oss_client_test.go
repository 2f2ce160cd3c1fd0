package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURLAndExtractKey(t *testing.T) {
	s := &OSSService{Endpoint: "https://oss-ap-south-1.aliyuncs.com", BucketName: "mahotsav-posters"}

	url := s.PublicURL("posters/chess_20260115_a1b2c3.webp")
	assert.Equal(t, "https://mahotsav-posters.oss-ap-south-1.aliyuncs.com/posters/chess_20260115_a1b2c3.webp", url)

	key, err := ExtractKeyFromPublicURL(url)
	require.NoError(t, err)
	assert.Equal(t, "posters/chess_20260115_a1b2c3.webp", key)
}

func TestPublicURLEmptyKey(t *testing.T) {
	s := &OSSService{Endpoint: "oss-ap-south-1.aliyuncs.com", BucketName: "b"}
	assert.Equal(t, "", s.PublicURL(""))
}

func TestExtractKeyFromPublicURLErrors(t *testing.T) {
	_, err := ExtractKeyFromPublicURL("")
	assert.Error(t, err)

	_, err = ExtractKeyFromPublicURL("https://host-without-path")
	assert.Error(t, err)
}

func TestExtractKeyWithPublicBase(t *testing.T) {
	t.Setenv("ALI_OSS_PUBLIC_BASE", "https://cdn.mahotsav.example")
	key, err := ExtractKeyFromPublicURL("https://cdn.mahotsav.example/posters/solo-dance.webp")
	require.NoError(t, err)
	assert.Equal(t, "posters/solo-dance.webp", key)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "inter-college-quiz", slugify("Inter College Quiz"))
	assert.Equal(t, "100m-sprint", slugify("100m_Sprint"))
	assert.Equal(t, "file", slugify("!!!"))
}
