// Package rates define as métricas derivadas de uso. Todas as funções seguem
// a mesma política de denominador zero: quando o denominador é zero a taxa é
// definida como 0 — nunca NaN, Infinity ou erro.
//
// As taxas populacionais devem ser calculadas a partir de somas ou médias já
// agregadas, nunca pela média de taxas individuais: a média de razões
// calculadas separadamente não representa a taxa da população.
package rates

// MatchRate = matches / likes
func MatchRate(matches, swipeLikes float64) float64 {
	return safeRatio(matches, swipeLikes)
}

// LikeRate = likes / (likes + passes)
func LikeRate(swipeLikes, swipePasses float64) float64 {
	return safeRatio(swipeLikes, swipeLikes+swipePasses)
}

// MessagesSentRate = enviadas / (enviadas + recebidas)
func MessagesSentRate(messagesSent, messagesReceived float64) float64 {
	return safeRatio(messagesSent, messagesSent+messagesReceived)
}

// ResponseRate = enviadas / recebidas
func ResponseRate(messagesSent, messagesReceived float64) float64 {
	return safeRatio(messagesSent, messagesReceived)
}

// EngagementRate = (likes + passes + enviadas) / aberturas de app
func EngagementRate(swipeLikes, swipePasses, messagesSent, appOpens float64) float64 {
	return safeRatio(swipeLikes+swipePasses+messagesSent, appOpens)
}

func safeRatio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
