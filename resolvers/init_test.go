package resolvers_test

import (
	"net/http"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"

	"github.com/9seconds/cartographer/cartolib"
)

type MockedResolverTestSuite struct {
	suite.Suite

	http cartolib.HTTPClient
}

func (suite *MockedResolverTestSuite) SetupSuite() {
	httpmock.Activate()
}

func (suite *MockedResolverTestSuite) TearDownSuite() {
	httpmock.DeactivateAndReset()
}

func (suite *MockedResolverTestSuite) SetupTest() {
	suite.http = cartolib.NewHTTPClient(&http.Client{},
		"test-agent",
		time.Millisecond,
		100)
}

func (suite *MockedResolverTestSuite) TearDownTest() {
	httpmock.Reset()
}
