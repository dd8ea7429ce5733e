// Package apiclient is the HTTP request executor shared by the SFR SDKs.
//
// A Client owns one base URL and applies the same pipeline to every call:
// header injection, bearer token and API key, bounded retry with exponential
// backoff, and error normalization.
//
// # Usage
//
//	client, err := apiclient.New("https://api.sfr.tokyo/api/learning", logger,
//		apiclient.WithTimeout(10*time.Second),
//		apiclient.WithRetryAttempts(3),
//	)
//	if err != nil {
//		return err
//	}
//	client.SetAccessToken(token)
//
//	var space learning.Space
//	err = client.Get(ctx, "/spaces/42", &space, apiclient.WithRetries(0))
//
// # Retry policy
//
// A call makes at most RetryAttempts+1 attempts. Transport failures and 5xx
// responses are retried; every other failure, and 401, 403 and 404, is final.
// The wait after attempt n (zero-indexed) is min(1s * 2^n, 5s) with no jitter.
// The loop is driven by go-retryablehttp with the policy plugged in through
// CheckRetry and Backoff.
//
// # Headers
//
// Headers are merged in a fixed order, later steps winning:
//
//  1. Content-Type and Accept set to application/json
//  2. configured default headers
//  3. Authorization: Bearer <token>, when a token is set
//  4. X-API-Key, when configured
//  5. per-call headers
//  6. the multipart Content-Type for PostMultipart
//
// # Error Handling
//
// Every failure is an *Error carrying the status (0 when no response was
// received), a code, a message, the request path and a timestamp. errors.Is
// matches ErrUnauthorized, ErrForbidden, ErrNotFound, ErrServer and ErrNetwork:
//
//	if errors.Is(err, apiclient.ErrNotFound) {
//		// handle missing resource
//	}
package apiclient
