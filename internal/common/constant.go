package common

// AccessTokenHeaderName is the HTTP header used to carry the access token
// on outbound API requests.
const AccessTokenHeaderName = "X-Access-Token"

// DateFormat is the day key used by the posting quota bookkeeping on both
// the client and the server ("YYYY-MM-DD").
const DateFormat = "2006-01-02"
