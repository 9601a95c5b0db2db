package main

import (
	"github.com/spf13/cobra"

	"github.com/longdzai22/KolConnection/internal/catalog"
	"github.com/longdzai22/KolConnection/internal/workflow"
	"github.com/longdzai22/KolConnection/pkg/model"
)

func workflowApply(email, name string, job model.Job, cv *model.CV) workflow.ApplyInput {
	return workflow.ApplyInput{
		CandidateEmail: email,
		JobID:          job.ID,
		JobTitle:       job.Title,
		PosterEmail:    job.OwnerEmail(),
		CandidateName:  name,
		CV:             cv,
	}
}

func (app *application) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed demo users, categories, packages and bookings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.Admin.Seed(cmd.Context()); err != nil {
				return err
			}
			app.Logger.Sugar().Infow("seeded demo data", "store", app.Config.Store.Backend)
			return nil
		},
	}
}

func (app *application) jobsCmd() *cobra.Command {
	var keyword, location string
	var page, pageSize int
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List or search the job catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			jobs, err := app.Catalog.Search(cmd.Context(), keyword, location)
			if err != nil {
				return err
			}
			sugar := app.Logger.Sugar()
			for _, j := range catalog.Page(jobs, page, pageSize) {
				sugar.Infow("job",
					"id", j.ID,
					"title", j.Title,
					"company", j.Company,
					"location", j.Location,
					"salary", j.Salary,
				)
			}
			sugar.Infof("%d job(s) total, page %d", len(jobs), page)
			return nil
		},
	}
	cmd.Flags().StringVarP(&keyword, "keyword", "k", "", "title or company substring")
	cmd.Flags().StringVarP(&location, "location", "l", "", "location substring")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", catalog.DefaultPageSize, "jobs per page")
	return cmd
}

// demoCmd walks one negotiation end to end: a seeker applies, the employer
// sends an offer, the seeker accepts, and the audit log is printed.
func (app *application) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the apply/offer/accept lifecycle against the configured store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			sugar := app.Logger.Sugar()

			if err := app.Admin.Seed(ctx); err != nil {
				return err
			}

			seeker, err := app.Identity.Register(ctx, "alice@example.com", "Alice", "demo-pass", model.RoleSeeker)
			if err != nil {
				return err
			}
			if _, err := app.Identity.Login(ctx, seeker.Email, "demo-pass"); err != nil {
				return err
			}
			cv := model.CV{FullName: "Alice", Position: "Sales", Skills: "B2B, CRM", Experience: "2 years"}
			if err := app.Identity.SaveCV(ctx, cv); err != nil {
				return err
			}

			jobs, err := app.Catalog.List(ctx)
			if err != nil {
				return err
			}
			job := jobs[0]
			sugar.Infow("applying", "job", job.Title, "candidate", seeker.Email)

			a, err := app.Engine.Apply(ctx, workflowApply(seeker.Email, seeker.Name, job, &cv))
			if err != nil {
				return err
			}
			sugar.Infow("applied", "status", a.Status)

			offer, err := app.Engine.SendOffer(ctx, job.OwnerEmail(), seeker.Email, job.ID, 500, "Great fit for our team")
			if err != nil {
				return err
			}
			sugar.Infow("offer sent", "id", offer.ID(), "price", offer.Price)

			if _, err := app.Engine.AcceptOffer(ctx, seeker.Email, offer.ID(), job.ID); err != nil {
				return err
			}

			final, err := app.Repository.Applications.FindByCandidateAndJob(ctx, seeker.Email, job.ID)
			if err != nil {
				return err
			}
			sugar.Infow("negotiation settled", "status", final.Status)
			for _, entry := range final.Log {
				sugar.Infow("log", "action", entry.Action, "by", entry.By, "offerId", entry.OfferID, "price", entry.Price)
			}
			return nil
		},
	}
}
