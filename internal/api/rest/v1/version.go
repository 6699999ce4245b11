package v1

// BasePath is the URL prefix shared by all API routes.
const BasePath = "/api"
