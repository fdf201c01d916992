// Package scraper simulates ingesting civic complaints from social
// platforms and pushes them through the same triage pipeline as direct
// submissions.
package scraper

import (
	"context"
	"sync"

	"github.com/civicwatch/triage/internal/domain"
)

// Feed supplies batches of raw social posts. Implementations decide where the
// posts come from; the demo feed replays a fixed set.
type Feed interface {
	// Next returns up to max posts, or an empty slice when the feed is
	// exhausted for now.
	Next(ctx context.Context, max int) ([]domain.SocialPost, error)
}

// demoPosts mirrors the kind of traffic a city sees across Twitter, WhatsApp
// groups and email: genuine complaints in English and Hinglish mixed with
// spam and test posts the screen should reject.
var demoPosts = []domain.SocialPost{
	{
		ID:       "t1",
		Platform: domain.SourceTwitter,
		Handle:   "@delhi_resident",
		Title:    "Streetlight broken near Connaught Place",
		Body:     "The streetlight near Connaught Place has been broken for 2 weeks!! Nobody fixing it #DelhiProblems #Infrastructure",
		Location: "Connaught Place",
	},
	{
		ID:       "w1",
		Platform: domain.SourceWhatsApp,
		Handle:   "Resident Group Delhi",
		Title:    "Garbage truck missing for 3 days",
		Body:     "Bhai logo garbage truck aaya hi nahi 3 din se, hamare block mein bahut smell aa rahi hai. Koi complain karo please",
		Location: "Karol Bagh",
	},
	{
		ID:       "t2",
		Platform: domain.SourceTwitter,
		Handle:   "@angryCitizen99",
		Title:    "Huge pothole on MG Road",
		Body:     "HUGE pothole on MG Road near metro station. My bike's tyre burst! @MunicipalCorp @DelhiGovt please fix URGENTLY",
		Location: "MG Road",
	},
	{
		ID:       "e1",
		Platform: domain.SourceEmail,
		Handle:   "ramesh.k@gmail.com",
		Title:    "Water supply cut for 4 days in Sector 14",
		Body:     "Dear Sir, We have not received water supply for the past 4 days in Sector 14, Dwarka. Kindly look into this matter urgently.",
		Location: "Dwarka Sector 14",
	},
	{
		ID:       "t3",
		Platform: domain.SourceTwitter,
		Handle:   "@localreporter",
		Title:    "Park in Lajpat Nagar vandalized",
		Body:     "Park in Lajpat Nagar completely vandalized. Benches broken, graffiti everywhere. Kids have nowhere to play. @DDA_India",
		Location: "Lajpat Nagar",
	},
	{
		ID:       "w2",
		Platform: domain.SourceWhatsApp,
		Handle:   "Colony WhatsApp",
		Title:    "Bus stop shed broken for two months",
		Body:     "Bus stop ka shed toot gaya 2 mahine pehle se. Baarish mein bohot problem hoti hai. Koi sunta hi nahi hai",
		Location: "Janakpuri",
	},
	{
		ID:       "e2",
		Platform: domain.SourceEmail,
		Handle:   "priya.sharma@yahoo.com",
		Title:    "Illegal parking blocking our driveway",
		Body:     "For the past month, unknown vehicles are parking in front of our gate at 45 Vasant Vihar. Police not responding to calls.",
		Location: "Vasant Vihar",
	},
	{
		ID:       "t4",
		Platform: domain.SourceTwitter,
		Handle:   "@techie_delhi",
		Title:    "free pizza",
		Body:     "lol free pizza lol discount code FREE100 click here bit.ly/fakespam not a real complaint haha spam test",
		Location: "",
	},
	{
		ID:       "w3",
		Platform: domain.SourceWhatsApp,
		Handle:   "Saket Residents",
		Title:    "Sewer line overflow behind Select City Walk",
		Body:     "Sewer line overflow ho gayi Select City Walk ke peeche. Raste pe paani bhar gaya. Bahut buri smell. Health hazard ban raha hai",
		Location: "Saket",
	},
	{
		ID:       "t5",
		Platform: domain.SourceTwitter,
		Handle:   "@frustrated_mom",
		Title:    "Dangerous playground at RK Puram park",
		Body:     "The playground at RK Puram park is so dangerous!! Rusty swings, broken slide. My child got hurt yesterday. This is unacceptable @DelhiGovt",
		Location: "RK Puram",
	},
	{
		ID:       "e3",
		Platform: domain.SourceEmail,
		Handle:   "suresh.v@hotmail.com",
		Title:    "Dead tree leaning on power lines",
		Body:     "A large dead tree at B-12 Green Park Extension is leaning dangerously over power lines. It can fall any time and cause serious accidents.",
		Location: "Green Park Extn",
	},
	{
		ID:       "t6",
		Platform: domain.SourceTwitter,
		Handle:   "@spambot_xyz",
		Title:    "Best deals",
		Body:     "BUY NOW!!! Best deals!!! Click here!!! Not related to civic issues at all. aaaa aaa test test test",
		Location: "",
	},
}

// DemoFeed replays the built-in demo posts once, in order, then reports an
// empty feed. Safe for concurrent use.
type DemoFeed struct {
	mu     sync.Mutex
	posts  []domain.SocialPost
	cursor int
}

// NewDemoFeed creates a feed over the built-in demo posts.
func NewDemoFeed() *DemoFeed {
	return &DemoFeed{posts: demoPosts}
}

// NewDemoFeedWithPosts creates a feed over the given posts.
func NewDemoFeedWithPosts(posts []domain.SocialPost) *DemoFeed {
	return &DemoFeed{posts: posts}
}

// Next returns the next batch of posts, advancing the cursor.
func (f *DemoFeed) Next(_ context.Context, max int) ([]domain.SocialPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cursor >= len(f.posts) || max <= 0 {
		return nil, nil
	}

	end := f.cursor + max
	if end > len(f.posts) {
		end = len(f.posts)
	}
	batch := f.posts[f.cursor:end]
	f.cursor = end
	return batch, nil
}

// Remaining reports how many posts the feed has left.
func (f *DemoFeed) Remaining() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.posts) - f.cursor
}
