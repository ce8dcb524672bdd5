package usecase

import (
	"context"
	"fmt"

	"github.com/gridstats/gridiron/internal/domain/drive"
	"github.com/gridstats/gridiron/internal/domain/play"
	"github.com/gridstats/gridiron/internal/platform/jsondoc"
	"github.com/gridstats/gridiron/internal/platform/logging"
)

// DriveIngestService persists the drive subtree of a competition: drives,
// their plays, each play's participants, and each participant's stats.
// A failure in one drive or play is contained there; siblings continue.
type DriveIngestService struct {
	fetcher   DocumentFetcher
	athletes  *AthleteService
	driveRepo drive.Repository
	playRepo  play.Repository
	entities  *Entities
	logger    *logging.Logger
}

func NewDriveIngestService(
	fetcher DocumentFetcher,
	athletes *AthleteService,
	driveRepo drive.Repository,
	playRepo play.Repository,
	entities *Entities,
	logger *logging.Logger,
) *DriveIngestService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DriveIngestService{
		fetcher:   fetcher,
		athletes:  athletes,
		driveRepo: driveRepo,
		playRepo:  playRepo,
		entities:  entities,
		logger:    logger,
	}
}

// IngestDrives resolves the drives listing of one competition and ingests
// every drive in it.
func (s *DriveIngestService) IngestDrives(ctx context.Context, drivesRef string, compID int64) error {
	ctx, span := startUsecaseSpan(ctx, "drive.IngestDrives")
	defer span.End()

	items, err := s.fetcher.AllItems(ctx, drivesRef)
	if err != nil {
		return fmt.Errorf("fetch drives: %w", err)
	}

	for _, item := range items {
		if err := s.ingestDrive(ctx, item, compID); err != nil {
			s.logger.WarnContext(ctx, "drive ingestion failed", "competition_id", compID, "error", err)
		}
	}
	return nil
}

func (s *DriveIngestService) ingestDrive(ctx context.Context, doc jsondoc.Doc, compID int64) error {
	id, err := doc.RequiredInt("id")
	if err != nil {
		return fmt.Errorf("%w: drive: %v", ErrValidation, err)
	}

	_, err = lookupOrCreate(ctx, s.entities, entityKey("drive", id),
		func(ctx context.Context) (drive.Drive, bool, error) {
			return s.driveRepo.GetByID(ctx, id)
		},
		func(ctx context.Context) (drive.Drive, error) {
			s.ingestPlays(ctx, doc, id)

			d := drive.Drive{
				ID:             id,
				CompetitionID:  compID,
				Description:    doc.Str("description"),
				Yards:          doc.Int("yards"),
				IsScore:        doc.Bool("isScore"),
				OffensivePlays: doc.Int("offensivePlays"),
				StartQuarter:   doc.Int("start", "period", "number"),
				StartClock:     doc.Int("start", "clock", "value"),
				StartYardLine:  doc.Int("start", "yardLine"),
				EndQuarter:     doc.Int("end", "period", "number"),
				EndClock:       doc.Int("end", "clock", "value"),
				EndYardLine:    doc.Int("end", "yardLine"),
			}
			if err := s.driveRepo.Insert(ctx, d); err != nil {
				return drive.Drive{}, fmt.Errorf("insert drive %d: %w", id, err)
			}
			return d, nil
		},
	)
	return err
}

// ingestPlays reads the drive's play list, inline when the feed embeds it
// and via the listing $ref otherwise.
func (s *DriveIngestService) ingestPlays(ctx context.Context, driveDoc jsondoc.Doc, driveID int64) {
	items := driveDoc.List("plays", "items")
	if len(items) == 0 {
		if playsRef := driveDoc.Ref("plays"); playsRef != "" {
			fetched, err := s.fetcher.AllItems(ctx, playsRef)
			if err != nil {
				s.logger.WarnContext(ctx, "fetch plays failed", "drive_id", driveID, "error", err)
				return
			}
			items = fetched
		}
	}

	for _, item := range items {
		if err := s.ingestPlay(ctx, item, driveID); err != nil {
			s.logger.WarnContext(ctx, "play ingestion failed", "drive_id", driveID, "error", err)
		}
	}
}

func (s *DriveIngestService) ingestPlay(ctx context.Context, doc jsondoc.Doc, driveID int64) error {
	id, err := doc.RequiredInt("id")
	if err != nil {
		return fmt.Errorf("%w: play: %v", ErrValidation, err)
	}

	_, err = lookupOrCreate(ctx, s.entities, entityKey("play", id),
		func(ctx context.Context) (play.Play, bool, error) {
			return s.playRepo.GetByID(ctx, id)
		},
		func(ctx context.Context) (play.Play, error) {
			p := play.Play{
				ID:                  id,
				DriveID:             &driveID,
				SequenceNumber:      doc.Int("sequenceNumber"),
				Type:                doc.Str("type", "text"),
				Description:         doc.Str("text"),
				AwayScore:           doc.Int("awayScore"),
				HomeScore:           doc.Int("homeScore"),
				Quarter:             doc.Int("period", "number"),
				IsScoringPlay:       doc.Bool("scoringPlay"),
				ScoreValue:          doc.Int("scoreValue"),
				StartDown:           doc.Int("start", "down"),
				EndDown:             doc.Int("end", "down"),
				StartDistance:       doc.Int("start", "distance"),
				EndDistance:         doc.Int("end", "distance"),
				StartYardLine:       doc.Int("start", "yardLine"),
				EndYardLine:         doc.Int("end", "yardLine"),
				StartYardsToEndzone: doc.Int("start", "yardsToEndzone"),
				EndYardsToEndzone:   doc.Int("end", "yardsToEndzone"),
			}
			if err := s.playRepo.Insert(ctx, p); err != nil {
				return play.Play{}, fmt.Errorf("insert play %d: %w", id, err)
			}

			for _, participantDoc := range doc.List("participants") {
				if err := s.ingestParticipant(ctx, participantDoc, id); err != nil {
					s.logger.WarnContext(ctx, "participant ingestion failed", "play_id", id, "error", err)
				}
			}
			return p, nil
		},
	)
	return err
}

func (s *DriveIngestService) ingestParticipant(ctx context.Context, doc jsondoc.Doc, playID int64) error {
	athleteRef := doc.Ref("athlete")
	if athleteRef == "" {
		return fmt.Errorf("%w: participant has no athlete ref", ErrValidation)
	}

	a, err := s.athletes.EnsureAthlete(ctx, athleteRef)
	if err != nil {
		return fmt.Errorf("resolve participant athlete: %w", err)
	}

	order := doc.Int("order")
	participant, err := lookupOrCreate(ctx, s.entities, entityKey("participant", playID, a.ID, order),
		func(ctx context.Context) (play.Participant, bool, error) {
			return s.playRepo.FindParticipant(ctx, playID, a.ID, order)
		},
		func(ctx context.Context) (play.Participant, error) {
			p := play.Participant{
				PlayID:    playID,
				AthleteID: a.ID,
				Order:     order,
				Type:      doc.Str("type"),
			}
			id, err := s.playRepo.InsertParticipant(ctx, p)
			if err != nil {
				return play.Participant{}, fmt.Errorf("insert participant: %w", err)
			}
			p.ID = id
			return p, nil
		},
	)
	if err != nil {
		return err
	}

	for _, statDoc := range doc.List("stats") {
		if err := s.ingestStat(ctx, statDoc, participant.ID); err != nil {
			s.logger.WarnContext(ctx, "stat ingestion failed", "participant_id", participant.ID, "error", err)
		}
	}
	return nil
}

func (s *DriveIngestService) ingestStat(ctx context.Context, doc jsondoc.Doc, participantID int64) error {
	name := doc.Str("name")
	if name == "" {
		return fmt.Errorf("%w: stat has no name", ErrValidation)
	}

	st := play.Stat{
		ParticipantID: participantID,
		Name:          name,
		Description:   doc.Str("description"),
		Abbreviation:  doc.Str("abbreviation"),
		Value:         doc.Float("value"),
	}

	key := entityKey("stat", st.ParticipantID, st.Name, st.Description, st.Abbreviation, st.Value)
	_, err := lookupOrCreate(ctx, s.entities, key,
		func(ctx context.Context) (play.Stat, bool, error) {
			ok, err := s.playRepo.StatExists(ctx, st)
			return st, ok, err
		},
		func(ctx context.Context) (play.Stat, error) {
			if err := s.playRepo.InsertStat(ctx, st); err != nil {
				return play.Stat{}, fmt.Errorf("insert stat %q: %w", st.Name, err)
			}
			return st, nil
		},
	)
	return err
}
