package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/may-ank-dot/MatchingEngine/internal/config"
	"github.com/may-ank-dot/MatchingEngine/internal/extraction"
	"github.com/may-ank-dot/MatchingEngine/internal/matching"
	"github.com/may-ank-dot/MatchingEngine/internal/skills"
	"github.com/may-ank-dot/MatchingEngine/internal/types"
)

var (
	matchCandidateFile string
	matchJobsFile      string
	matchTopK          int
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a candidate document against a jobs JSON file",
	Long:  "Read a candidate document (txt, pdf, or docx) and a JSON array of jobs, then print the ranked match results.",
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchCandidateFile, "candidate", "", "path to candidate document")
	matchCmd.Flags().StringVar(&matchJobsFile, "jobs", "", "path to JSON file with an array of jobs")
	matchCmd.Flags().IntVar(&matchTopK, "top-k", 0, "return only the top K results (all when omitted)")
	_ = matchCmd.MarkFlagRequired("candidate")
	_ = matchCmd.MarkFlagRequired("jobs")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	catalog, err := skills.NewCatalog(cfg.ExtraPatterns...)
	if err != nil {
		return err
	}

	rawCandidate, err := os.ReadFile(matchCandidateFile)
	if err != nil {
		return fmt.Errorf("failed to read candidate file: %w", err)
	}
	text, err := extraction.FromBytes(matchCandidateFile, rawCandidate)
	if err != nil {
		return err
	}

	rawJobs, err := os.ReadFile(matchJobsFile)
	if err != nil {
		return fmt.Errorf("failed to read jobs file: %w", err)
	}
	var jobs []types.Job
	if err := json.Unmarshal(rawJobs, &jobs); err != nil {
		return fmt.Errorf("failed to parse jobs JSON: %w", err)
	}

	req := &types.MatchRequest{
		Candidate: types.Candidate{RawText: &text},
		Jobs:      jobs,
	}
	if cmd.Flags().Changed("top-k") {
		req.TopK = &matchTopK
	}

	results, err := matching.New(catalog, nil).Match(context.Background(), req)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
