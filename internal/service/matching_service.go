package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trait-match/internal/events"
	"trait-match/internal/repository"
)

// Los resultados se publican con timestamp en hora de Corea.
var kst = time.FixedZone("KST", 9*60*60)

const timestampLayout = "2006-01-02T15:04:05-07:00"

// MatchingService orquesta una corrida completa de matching: busqueda de
// miembros, vectorizacion, generacion de soluciones, filtrado, busqueda
// genetica, calificacion y publicacion del resultado. Cada corrida es duena
// exclusiva de sus soluciones; no hay estado compartido entre corridas.
type MatchingService struct {
	logger    *zap.Logger
	members   repository.MemberRepository
	generator *SolutionGenerator
	filter    *SolutionFilter
	search    *GeneticSearch
	grader    *TraitGrader
	publisher events.Publisher
	topic     string
	now       func() time.Time
}

func NewMatchingService(
	logger *zap.Logger,
	members repository.MemberRepository,
	generator *SolutionGenerator,
	filter *SolutionFilter,
	search *GeneticSearch,
	grader *TraitGrader,
	publisher events.Publisher,
	topic string,
) *MatchingService {
	return &MatchingService{
		logger:    logger,
		members:   members,
		generator: generator,
		filter:    filter,
		search:    search,
		grader:    grader,
		publisher: publisher,
		topic:     topic,
		now:       time.Now,
	}
}

// Run ejecuta una corrida de matching de principio a fin. Un pool de miembros
// vacio termina la corrida en silencio: es la condicion esperada para un
// matching sin inscritos y no se publica nada. Cualquier otro fallo aborta solo
// esta corrida; el unico indicio externo es la ausencia del evento publicado.
func (s *MatchingService) Run(ctx context.Context, matchingID string, teamSize int) error {
	runID := uuid.NewString()
	log := s.logger.With(zap.String("matching_id", matchingID), zap.String("run_id", runID))
	log.Info("matching run started", zap.Int("team_size", teamSize))

	records, err := s.members.FindByMatchingID(ctx, matchingID)
	if err != nil {
		return fmt.Errorf("find members: %w", err)
	}
	if len(records) == 0 {
		log.Info("no members for matching id, skipping run")
		return nil
	}

	units := ConvertMembers(records)
	log.Info("members vectorized", zap.Int("members", len(units)))

	solutions, err := s.generator.Generate(units, teamSize)
	if err != nil {
		return fmt.Errorf("generate solutions: %w", err)
	}
	log.Info("initial solutions generated", zap.Int("solutions", len(solutions)))

	filtered := s.filter.Filter(solutions)
	log.Info("solutions filtered", zap.Int("survivors", len(filtered)))

	best, err := s.search.Select(filtered)
	if err != nil {
		return fmt.Errorf("genetic search: %w", err)
	}

	reports := s.grader.Grade(best)

	event := events.MatchingCompleted{
		MatchingID: matchingID,
		Teams:      reports,
		Timestamp:  s.now().In(kst).Format(timestampLayout),
	}
	if err := s.publisher.Publish(ctx, s.topic, event); err != nil {
		log.Error("publish failed", zap.Error(err))
	}
	if err := s.publisher.Flush(ctx); err != nil {
		log.Error("flush failed", zap.Error(err))
	}

	log.Info("matching run completed", zap.Int("teams", len(reports)))
	return nil
}
