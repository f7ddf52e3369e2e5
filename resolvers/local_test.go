package resolvers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/9seconds/cartographer/geodb"
	"github.com/9seconds/cartographer/resolvers"
)

// Three blocks: 1.0.0.0-1.0.0.255, 1.0.1.0-1.0.1.255 and
// 8.8.8.0-8.8.8.255, with a gap in between.
const localFixture = `16777216,16777471,"AA","Country A","Region A","City A",10.0,20.0
16777472,16777727,"BB","Country B","Region B","City B",11.0,21.0
134744064,134744319,"CC","Country C","Region C","City C",30.0,40.0
`

type LocalResolverTestSuite struct {
	suite.Suite

	fs       afero.Fs
	resolver cartolib.Resolver
}

func (suite *LocalResolverTestSuite) SetupTest() {
	suite.fs = afero.NewMemMapFs()

	err := afero.WriteFile(suite.fs, "db.csv", []byte(localFixture), 0o644)
	suite.Require().NoError(err)

	db, err := geodb.Open(suite.fs, "db.csv")
	suite.Require().NoError(err)

	suite.resolver = resolvers.NewLocal(db)
}

func (suite *LocalResolverTestSuite) TestName() {
	suite.Equal(resolvers.NameLocal, suite.resolver.Name())
}

func (suite *LocalResolverTestSuite) TestResolveFirstBlock() {
	point, err := suite.resolver.Resolve(context.Background(), "1.0.0.5")

	suite.NoError(err)
	suite.Equal(cartolib.GeoPoint{Latitude: 10.0, Longitude: 20.0}, point)
}

func (suite *LocalResolverTestSuite) TestResolveSecondBlock() {
	point, err := suite.resolver.Resolve(context.Background(), "1.0.1.17")

	suite.NoError(err)
	suite.Equal(cartolib.GeoPoint{Latitude: 11.0, Longitude: 21.0}, point)
}

func (suite *LocalResolverTestSuite) TestResolveThirdBlock() {
	point, err := suite.resolver.Resolve(context.Background(), "8.8.8.8")

	suite.NoError(err)
	suite.Equal(cartolib.GeoPoint{Latitude: 30.0, Longitude: 40.0}, point)
}

func (suite *LocalResolverTestSuite) TestResolveInvalidAddress() {
	for _, addr := range []string{"1.0.0.300", "abc", ""} {
		_, err := suite.resolver.Resolve(context.Background(), addr)

		suite.True(errors.Is(err, cartolib.ErrInvalidAddress), addr)
	}
}

func (suite *LocalResolverTestSuite) TestResolveGap() {
	_, err := suite.resolver.Resolve(context.Background(), "2.2.2.2")

	suite.True(errors.Is(err, cartolib.ErrUnresolvedAddress))
	suite.False(errors.Is(err, cartolib.ErrInconsistentDatabase))
}

func (suite *LocalResolverTestSuite) TestResolveNeverBorrowsFromNeighbours() {
	// 1.0.2.0, right past the end of the second block.
	_, err := suite.resolver.Resolve(context.Background(), "1.0.2.0")

	suite.True(errors.Is(err, cartolib.ErrUnresolvedAddress))
}

func TestLocalResolver(t *testing.T) {
	suite.Run(t, &LocalResolverTestSuite{})
}

type InconsistentLocalResolverTestSuite struct {
	suite.Suite

	resolver cartolib.Resolver
}

func (suite *InconsistentLocalResolverTestSuite) SetupTest() {
	overlapping := localFixture +
		`16777300,16777350,"DD","Country D","Region D","City D",50.0,60.0` + "\n"

	fs := afero.NewMemMapFs()

	err := afero.WriteFile(fs, "db.csv", []byte(overlapping), 0o644)
	suite.Require().NoError(err)

	db, err := geodb.Open(fs, "db.csv")
	suite.Require().NoError(err)

	suite.resolver = resolvers.NewLocal(db)
}

func (suite *InconsistentLocalResolverTestSuite) TestResolveAmbiguous() {
	// 1.0.0.100 is claimed by the first block and the injected one.
	_, err := suite.resolver.Resolve(context.Background(), "1.0.0.100")

	suite.True(errors.Is(err, cartolib.ErrInconsistentDatabase))
	suite.False(errors.Is(err, cartolib.ErrUnresolvedAddress))

	ambiguous := &geodb.AmbiguousRangeError{}
	suite.True(errors.As(err, &ambiguous))
	suite.Len(ambiguous.Records, 2)
}

func (suite *InconsistentLocalResolverTestSuite) TestCleanRangesStillResolve() {
	point, err := suite.resolver.Resolve(context.Background(), "8.8.8.8")

	suite.NoError(err)
	suite.Equal(cartolib.GeoPoint{Latitude: 30.0, Longitude: 40.0}, point)
}

func TestInconsistentLocalResolver(t *testing.T) {
	suite.Run(t, &InconsistentLocalResolverTestSuite{})
}
