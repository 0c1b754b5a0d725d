// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/evening-out/models"
	"github.com/danielhkuo/evening-out/testutil"
)

// TestFullPollWorkflow tests the complete end-to-end workflow:
// 1. Create poll
// 2. Fetch the poll as an invitee would
// 3. Three voters submit their availability
// 4. Check the voter roll
// 5. Verify the tally and the suggested date
// 6. Fetch the share payload
func TestFullPollWorkflow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	pollHandler := NewPollHandler(conn, cfg)
	votingHandler := NewVotingHandler(conn, cfg)
	resultsHandler := NewResultsHandler(conn, cfg)
	shareHandler := NewShareHandler(conn, cfg)

	// Step 1: Create a poll
	createReq := models.CreatePollRequest{
		Title:         "Integration Test Night",
		Location:      "The Old Crown",
		OrganizerName: "IntegrationTester",
		Dates:         []string{"2024-03-01", "2024-03-08"},
	}
	req := testutil.MakeRequest("POST", "/polls", createReq, nil)
	w := httptest.NewRecorder()
	pollHandler.CreatePoll(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Create poll failed: %d - %s", w.Code, w.Body.String())
	}

	var createResp models.CreatePollResponse
	testutil.AssertJSON(t, w, &createResp)
	pollID := createResp.PollID
	if pollID == "" || createResp.PollURL == "" {
		t.Fatal("Step 1 - Missing poll_id or poll_url")
	}
	t.Logf("Step 1 - Created poll: %s", pollID)

	// Step 2: Fetch the poll via its share link
	req = testutil.MakeRequest("GET", "/polls/"+pollID, nil, nil)
	req.SetPathValue("id", pollID)
	w = httptest.NewRecorder()
	pollHandler.GetPoll(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 2 - Get poll failed: %d - %s", w.Code, w.Body.String())
	}

	var pollResp models.PollResponse
	testutil.AssertJSON(t, w, &pollResp)
	if len(pollResp.Poll.Dates) != 2 {
		t.Fatalf("Step 2 - Expected 2 dates, got %d", len(pollResp.Poll.Dates))
	}
	t.Logf("Step 2 - Fetched poll with %d candidate dates", len(pollResp.Poll.Dates))

	// Step 3: Three voters submit
	submissions := []models.SubmitVoteRequest{
		{VoterName: "Alice", Responses: map[string]string{"2024-03-01": "yes", "2024-03-08": "no"}},
		{VoterName: "Bob", Responses: map[string]string{"2024-03-01": "yes", "2024-03-08": "maybe"}},
		{VoterName: "Carol", Responses: map[string]string{"2024-03-01": "no", "2024-03-08": "yes"}},
	}
	for _, submission := range submissions {
		req := testutil.MakeRequest("POST", "/polls/"+pollID+"/votes", submission, nil)
		req.SetPathValue("id", pollID)
		w := httptest.NewRecorder()
		votingHandler.SubmitVote(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Step 3 - Vote by %s failed: %d - %s", submission.VoterName, w.Code, w.Body.String())
		}
	}
	t.Logf("Step 3 - Submitted %d votes", len(submissions))

	// Step 4: Voter roll lists everyone who voted
	req = testutil.MakeRequest("GET", "/polls/"+pollID+"/votes", nil, nil)
	req.SetPathValue("id", pollID)
	w = httptest.NewRecorder()
	votingHandler.ListVoters(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 4 - List voters failed: %d - %s", w.Code, w.Body.String())
	}

	var voterResp models.VoterListResponse
	testutil.AssertJSON(t, w, &voterResp)
	if len(voterResp.Voters) != 3 {
		t.Fatalf("Step 4 - Expected 3 voters, got %d", len(voterResp.Voters))
	}
	t.Logf("Step 4 - Voter roll has %d entries", len(voterResp.Voters))

	// Step 5: Tally and suggestion
	req = testutil.MakeRequest("GET", "/polls/"+pollID+"/results", nil, nil)
	req.SetPathValue("id", pollID)
	w = httptest.NewRecorder()
	resultsHandler.GetResults(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 5 - Get results failed: %d - %s", w.Code, w.Body.String())
	}

	var resultsResp models.ResultsResponse
	testutil.AssertJSON(t, w, &resultsResp)

	if resultsResp.VoteCount != 3 {
		t.Errorf("Step 5 - Expected vote count 3, got %d", resultsResp.VoteCount)
	}
	if resultsResp.Suggested == nil || resultsResp.Suggested.Date != "2024-03-01" {
		t.Fatalf("Step 5 - Expected 2024-03-01 suggested, got %+v", resultsResp.Suggested)
	}
	if resultsResp.Suggested.Yes != 2 {
		t.Errorf("Step 5 - Expected 2 yes votes on the suggested date, got %d", resultsResp.Suggested.Yes)
	}
	t.Logf("Step 5 - Suggested date: %s", resultsResp.Suggested.Date)

	// Step 6: Share payload
	req = testutil.MakeRequest("GET", "/polls/"+pollID+"/share", nil, nil)
	req.SetPathValue("id", pollID)
	w = httptest.NewRecorder()
	shareHandler.GetShare(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 6 - Get share failed: %d - %s", w.Code, w.Body.String())
	}

	var shareResp models.ShareResponse
	testutil.AssertJSON(t, w, &shareResp)
	if shareResp.PollURL != createResp.PollURL {
		t.Errorf("Step 6 - Share URL %s does not match creation URL %s", shareResp.PollURL, createResp.PollURL)
	}
	t.Logf("Step 6 - Share message: %s", shareResp.Message)
}
