package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"github.com/gastromap/gastromap-backend/configs"
	"github.com/gastromap/gastromap-backend/pkg/auth"
)

const testSecret = "auth-test-secret"

type AuthTestSuite struct {
	suite.Suite
	router *gin.Engine
	seen   string
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (suite *AuthTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	conf := &configs.Config{}
	conf.Auth.SecretKey = testSecret
	manager := auth.NewAuthManager(conf, zaptest.NewLogger(suite.T()))

	suite.seen = ""
	suite.router = gin.New()
	suite.router.GET("/protected", manager.Middleware(), func(ctx *gin.Context) {
		suite.seen = ctx.GetString(auth.EmailKey)
		ctx.JSON(http.StatusOK, gin.H{"success": true})
	})
}

func (suite *AuthTestSuite) signToken(claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	suite.Require().NoError(err)

	return signed
}

func (suite *AuthTestSuite) request(authorization string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	suite.router.ServeHTTP(recorder, req)

	return recorder
}

func (suite *AuthTestSuite) TestValidTokenPasses() {
	signed := suite.signToken(jwt.MapClaims{
		"email": "owner@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	recorder := suite.request("Bearer " + signed)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal("owner@example.com", suite.seen)
}

func (suite *AuthTestSuite) TestLowercaseBearerAccepted() {
	signed := suite.signToken(jwt.MapClaims{"email": "owner@example.com"})

	recorder := suite.request("bearer " + signed)

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *AuthTestSuite) TestMissingHeaderRejected() {
	recorder := suite.request("")

	suite.Equal(http.StatusUnauthorized, recorder.Code)
	suite.JSONEq(`{"success": false, "error": "authorization header not found"}`, recorder.Body.String())
}

func (suite *AuthTestSuite) TestMalformedHeaderRejected() {
	recorder := suite.request("Token abc123")

	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

func (suite *AuthTestSuite) TestExpiredTokenRejected() {
	signed := suite.signToken(jwt.MapClaims{
		"email": "owner@example.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})

	recorder := suite.request("Bearer " + signed)

	suite.Equal(http.StatusUnauthorized, recorder.Code)
	suite.Empty(suite.seen)
}

func (suite *AuthTestSuite) TestWrongSecretRejected() {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "owner@example.com"})
	signed, err := token.SignedString([]byte("some-other-secret"))
	suite.Require().NoError(err)

	recorder := suite.request("Bearer " + signed)

	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

func (suite *AuthTestSuite) TestTokenWithoutEmailRejected() {
	signed := suite.signToken(jwt.MapClaims{"sub": "someone"})

	recorder := suite.request("Bearer " + signed)

	suite.Equal(http.StatusUnauthorized, recorder.Code)
	suite.JSONEq(`{"success": false, "error": "unable to get user id from token"}`, recorder.Body.String())
}
