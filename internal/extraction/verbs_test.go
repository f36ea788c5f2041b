package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractActionVerbs_CuratedVerbs(t *testing.T) {
	text := "Developed a billing service\nManaged a team of four\nAttended meetings"

	verbs := ExtractActionVerbs(text)

	assert.Equal(t, []string{"developed", "managed"}, verbs)
}

func TestExtractActionVerbs_BulletVerbShapeFallback(t *testing.T) {
	verbs := ExtractActionVerbs("• Shipped the mobile release\n• Bananas for scale")

	assert.Contains(t, verbs, "shipped")
	assert.NotContains(t, verbs, "bananas")
}

func TestExtractActionVerbs_NonBulletNeedsCuratedVerb(t *testing.T) {
	verbs := ExtractActionVerbs("Shipped the mobile release")

	assert.Empty(t, verbs)
}

func TestExtractActionVerbs_DedupedAndSorted(t *testing.T) {
	verbs := ExtractActionVerbs("Built a cache\nbuilt a queue\n• Automated deploys")

	assert.Equal(t, []string{"automated", "built"}, verbs)
}

func TestIsActionVerb(t *testing.T) {
	assert.True(t, IsActionVerb("Implemented"))
	assert.False(t, IsActionVerb("attended"))
}
