// Package learning is the client SDK for the SFR learning API.
//
// A Client groups four services that share one apiclient executor:
//
//   - Spaces: learning spaces (courses), membership and configuration
//   - Content: content items, uploads, progress and search
//   - Evaluations: ratings, replies, votes and reports
//   - Quiz: quizzes, attempts, leaderboards and practice sessions
//
// # Usage
//
//	sdk, err := learning.NewProd(token, apiKey, logger)
//	if err != nil {
//		return err
//	}
//
//	next, err := sdk.GetNextContent(ctx, spaceID)
//	if err != nil {
//		return err
//	}
//	if next == nil {
//		// every item in the space is done
//	}
//
// Errors from the services wrap *apiclient.Error, so errors.Is(err,
// apiclient.ErrNotFound) and apiclient.AsError work on them.
package learning
