package common

// AuthorizationHeader is the HTTP header carrying the bearer token on
// authenticated requests.
const AuthorizationHeader = "Authorization"

// BearerPrefix is the scheme prefix expected in the authorization header.
const BearerPrefix = "Bearer"
