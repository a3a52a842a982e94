package filter

import (
	"net/url"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestJobFilter_Empty(t *testing.T) {
	assert.Equal(t, bson.M{}, JobFilter{}.BSON())
	assert.Equal(t, bson.M{}, JobFilterFromQuery(url.Values{}).BSON())
}

func TestJobFilter_EmptyParamsAreAbsent(t *testing.T) {
	q := url.Values{"category": {""}, "search": {""}, "email": {""}}
	assert.Equal(t, bson.M{}, JobFilterFromQuery(q).BSON())
}

func TestJobFilter_AllClauses(t *testing.T) {
	q := url.Values{}
	q.Set("category", "design")
	q.Set("search", "Logo")
	q.Set("email", "a@x.com")

	got := JobFilterFromQuery(q).BSON()

	assert.Equal(t, bson.M{
		"category":         "design",
		"jobTitle":         primitive.Regex{Pattern: "Logo", Options: "i"},
		"buyer.buyerEmail": "a@x.com",
	}, got)
}

func TestJobFilter_OrderIndependent(t *testing.T) {
	first, err := url.ParseQuery("category=design&search=logo")
	assert.NoError(t, err)
	second, err := url.ParseQuery("search=logo&category=design")
	assert.NoError(t, err)

	assert.Equal(t, JobFilterFromQuery(first).BSON(), JobFilterFromQuery(second).BSON())
}

func TestJobFilter_DuplicateParamLastWins(t *testing.T) {
	q, err := url.ParseQuery("category=design&category=web-development")
	assert.NoError(t, err)

	assert.Equal(t, bson.M{"category": "web-development"}, JobFilterFromQuery(q).BSON())
}

func TestJobFilter_CategoryIsCaseSensitive(t *testing.T) {
	got := JobFilter{Category: String("Design")}.BSON()
	assert.Equal(t, "Design", got["category"])
}

func TestContains_EscapesMetacharacters(t *testing.T) {
	re := Contains("C++ (senior)")
	assert.Equal(t, "i", re.Options)

	compiled := regexp.MustCompile("(?" + re.Options + ")" + re.Pattern)
	assert.True(t, compiled.MatchString("Senior c++ (SENIOR) engineer"))
	assert.False(t, compiled.MatchString("C senior"))
}

func TestApplicationFilter(t *testing.T) {
	q := url.Values{}
	q.Set("email", "b@y.com")
	q.Set("filterBy", "design")

	assert.Equal(t, bson.M{
		"applicantDetails.email": "b@y.com",
		"category":               "design",
	}, ApplicationFilterFromQuery(q).BSON())
}

func TestApplicationFilter_OnlyEmail(t *testing.T) {
	q := url.Values{"email": {"b@y.com"}}
	assert.Equal(t, bson.M{"applicantDetails.email": "b@y.com"}, ApplicationFilterFromQuery(q).BSON())
}

func TestApplicationFilter_IgnoresJobParameters(t *testing.T) {
	q := url.Values{"search": {"logo"}, "category": {"design"}}
	assert.Equal(t, bson.M{}, ApplicationFilterFromQuery(q).BSON())
}
