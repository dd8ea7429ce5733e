// Package cryptoasset is the client SDK for the SFR token API: balances and
// transfers, rewards, collections and burns, governance, statistics, oracle
// feeds and audited system parameters.
//
// Amounts travel as decimal strings and decode into decimal.Decimal, so no
// precision is lost to float64.
//
//	client, err := cryptoasset.New(baseURL, logger, apiclient.WithAccessToken(token))
//	if err != nil {
//		return err
//	}
//	balance, err := client.Balance(ctx, userID)
package cryptoasset
