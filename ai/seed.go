package ai

import "complaint-triage/domain"

// SeedCorpus is a small curated set covering every trainable category.
// It bootstraps the first model and is appended to every retrain.
var SeedCorpus = []domain.TrainingSample{
	{Text: "I was charged twice for the same order", Label: domain.Billing},
	{Text: "My credit card was billed but the payment failed", Label: domain.Billing},
	{Text: "The invoice amount is wrong, I was overcharged", Label: domain.Billing},
	{Text: "I still have not received my refund", Label: domain.Billing},
	{Text: "Unexpected fee on my monthly bill", Label: domain.Billing},
	{Text: "The subscription charge appeared on my card after I cancelled", Label: domain.Billing},

	{Text: "The package never arrived", Label: domain.Delivery},
	{Text: "Tracking shows my parcel is lost", Label: domain.Delivery},
	{Text: "The delivery was three days late", Label: domain.Delivery},
	{Text: "The courier left the package at the wrong address", Label: domain.Delivery},
	{Text: "My order has not been shipped yet", Label: domain.Delivery},
	{Text: "The product arrived damaged in a crushed box", Label: domain.Delivery},

	{Text: "The quality is poor", Label: domain.Quality},
	{Text: "The product broke after one use", Label: domain.Quality},
	{Text: "The material feels cheap and flimsy", Label: domain.Quality},
	{Text: "This item does not match the description", Label: domain.Quality},
	{Text: "The stitching came apart after a week", Label: domain.Quality},
	{Text: "Terrible build quality, the product is defective", Label: domain.Quality},

	{Text: "The customer service representative was rude", Label: domain.Service},
	{Text: "Nobody answered my support ticket", Label: domain.Service},
	{Text: "The staff was unhelpful and impolite", Label: domain.Service},
	{Text: "I waited on hold for an hour to speak to an agent", Label: domain.Service},
	{Text: "The service was excellent and the agent was friendly", Label: domain.Service},
	{Text: "Support never called me back as promised", Label: domain.Service},

	{Text: "The website is not working", Label: domain.Technical},
	{Text: "I cannot log in to my account", Label: domain.Technical},
	{Text: "The app keeps crashing at checkout", Label: domain.Technical},
	{Text: "I get an error page when I reset my password", Label: domain.Technical},
	{Text: "The mobile application freezes on startup", Label: domain.Technical},
	{Text: "The login page shows a server error", Label: domain.Technical},
}
