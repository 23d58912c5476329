package engine

import (
	"apple-chase/internal/domain"
	"apple-chase/internal/engine/handlers"
	"apple-chase/internal/engine/handlers/actions"
	"apple-chase/internal/network"
	"apple-chase/pkg/api"
	"apple-chase/pkg/logger"
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

var (
	// ErrServiceStopped - цикл сервиса завершен, события больше не принимаются
	ErrServiceStopped = errors.New("game service stopped")
	// ErrUnknownAction - клиент прислал действие, которого нет в протоколе
	ErrUnknownAction = errors.New("unknown action")
)

// SessionInfo - состояние одного соединения для debug-ручек
type SessionInfo struct {
	ConnID string       `json:"connId"`
	State  SessionState `json:"state"`
}

// Snapshot - согласованный срез состояния релея
type Snapshot struct {
	Players  []domain.Player     `json:"players"`
	Item     *domain.Collectible `json:"item"`
	Sessions []SessionInfo       `json:"sessions"`
}

// snapshotRequest идет через тот же inbox, что и команды,
// поэтому снимок видит все события, поставленные в очередь до него
type snapshotRequest struct {
	reply chan Snapshot
}

// GameService владеет хранилищем и сессиями. Все события всех соединений
// проходят через один inbox и обрабатываются одной горутиной (Run),
// поэтому Store не нуждается в блокировках, а порядок рассылок совпадает
// с порядком мутаций.
type GameService struct {
	Config  Config
	Store   *Store
	Hub     *network.Broadcaster
	Journal *domain.Journal

	inbox    chan any
	done     chan struct{}
	sessions map[string]*Session
	handlers map[domain.ActionType]handlers.HandlerFunc

	// silent - режим воспроизведения журнала: без рассылок и без Hub
	silent bool
}

func NewService(cfg Config) *GameService {
	if cfg.InboxSize <= 0 {
		cfg.InboxSize = NewConfig().InboxSize
	}

	s := &GameService{
		Config:   cfg,
		Store:    NewStore(),
		Hub:      network.NewBroadcaster(),
		Journal:  domain.NewJournal(),
		inbox:    make(chan any, cfg.InboxSize),
		done:     make(chan struct{}),
		sessions: make(map[string]*Session),
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
	}

	s.registerHandlers()
	return s
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionUpdatePlayer] = handlers.WithPayload(actions.HandleUpdatePlayer)
	s.handlers[domain.ActionUpdateItem] = handlers.WithPayload(actions.HandleUpdateItem)
}

// Run обрабатывает события до отмены ctx. Вызывается один раз.
func (s *GameService) Run(ctx context.Context) {
	defer close(s.done)
	logger.Log.Info("[LOOP] Relay loop started")

	for {
		select {
		case <-ctx.Done():
			logger.Log.WithField("players", s.Store.Len()).Info("[LOOP] Relay loop stopped")
			return
		case ev := <-s.inbox:
			s.handle(ev)
		}
	}
}

// Connect регистрирует новое соединение. Подписка в Hub должна уже существовать:
// ответ (IDENTITY и ITEM) уходит через нее.
func (s *GameService) Connect(connID string) error {
	return s.enqueue(domain.InternalCommand{Action: domain.ActionConnect, ConnID: connID})
}

// Disconnect сообщает, что транспорт закрыт. Повторный вызов - no-op.
func (s *GameService) Disconnect(connID string) error {
	return s.enqueue(domain.InternalCommand{Action: domain.ActionDisconnect, ConnID: connID})
}

// Submit принимает команду от внешнего мира (WebSocket).
// Неизвестное действие отбрасывается сразу; payload проверяется уже в цикле.
func (s *GameService) Submit(connID string, cmd api.ClientCommand) error {
	action := domain.ParseAction(cmd.Action)
	if action == domain.ActionUnknown {
		return fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}
	return s.enqueue(domain.InternalCommand{
		Action:  action,
		ConnID:  connID,
		Payload: cmd.Payload,
	})
}

// Snapshot возвращает копию состояния после всех уже поставленных в очередь событий
func (s *GameService) Snapshot(ctx context.Context) (Snapshot, error) {
	req := snapshotRequest{reply: make(chan Snapshot, 1)}
	if err := s.enqueue(req); err != nil {
		return Snapshot{}, err
	}

	select {
	case snap := <-req.reply:
		return snap, nil
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	case <-s.done:
		return Snapshot{}, ErrServiceStopped
	}
}

// Replay применяет журнал к хранилищу без рассылок и возвращает итоговое состояние.
// Нельзя вызывать параллельно с Run.
func (s *GameService) Replay(j *domain.Journal) Snapshot {
	s.silent = true
	defer func() { s.silent = false }()

	for _, rec := range j.Records {
		s.apply(domain.InternalCommand{
			Action:  rec.Action,
			ConnID:  rec.ConnID,
			Payload: rec.Payload,
		})
	}
	return s.snapshot()
}

func (s *GameService) enqueue(ev any) error {
	select {
	case <-s.done:
		return ErrServiceStopped
	default:
	}

	select {
	case s.inbox <- ev:
		return nil
	case <-s.done:
		return ErrServiceStopped
	}
}

func (s *GameService) handle(ev any) {
	switch e := ev.(type) {
	case domain.InternalCommand:
		s.apply(e)
	case snapshotRequest:
		e.reply <- s.snapshot()
	default:
		logger.Log.Errorf("[LOOP] unexpected inbox event %T", ev)
	}
}

func (s *GameService) apply(cmd domain.InternalCommand) {
	switch cmd.Action {
	case domain.ActionConnect:
		s.connect(cmd)
	case domain.ActionDisconnect:
		s.disconnect(cmd)
	default:
		s.execute(cmd)
	}
}

// connect: connecting -> identified, новому соединению уходят его ID и текущий предмет
func (s *GameService) connect(cmd domain.InternalCommand) {
	log := logger.ForConn(cmd.ConnID)

	if sess, ok := s.sessions[cmd.ConnID]; ok {
		log.WithField("state", sess.State).Warn("Duplicate connect ignored")
		return
	}

	sess := NewSession(cmd.ConnID)
	if err := sess.Transition(StateIdentified); err != nil {
		log.WithError(err).Error("Cannot identify session")
		return
	}
	s.sessions[cmd.ConnID] = sess
	s.record(cmd)
	log.Info("Client identified")

	if s.silent {
		return
	}

	identity, err := api.NewServerMessage(api.MsgIdentity, api.IdentityPayload{ConnID: cmd.ConnID})
	if err != nil {
		log.WithError(err).Error("Failed to encode identity")
		return
	}
	item, err := api.NewServerMessage(api.MsgItem, api.NewCollectibleView(s.Store.Item()))
	if err != nil {
		log.WithError(err).Error("Failed to encode item snapshot")
		return
	}
	s.Hub.SendTo(cmd.ConnID, identity)
	s.Hub.SendTo(cmd.ConnID, item)
}

// disconnect: сессия закрывается, ее игроки удаляются, оставшимся уходит новый список
func (s *GameService) disconnect(cmd domain.InternalCommand) {
	log := logger.ForConn(cmd.ConnID)

	if !s.silent {
		s.Hub.Unregister(cmd.ConnID)
	}

	sess, ok := s.sessions[cmd.ConnID]
	if !ok {
		log.Debug("Disconnect for unknown session ignored")
		return
	}
	if err := sess.Transition(StateDisconnected); err != nil {
		log.WithError(err).Warn("Unexpected session state on disconnect")
	}
	delete(s.sessions, cmd.ConnID)

	removed := s.Store.RemovePlayer(cmd.ConnID)
	s.record(cmd)
	log.WithFields(logrus.Fields{
		"removed": removed,
		"players": s.Store.Len(),
	}).Info("Client disconnected")

	if !s.silent {
		s.broadcastPlayers()
	}
}

// execute выполняет хендлер клиентской команды и делает рассылку по его результату
func (s *GameService) execute(cmd domain.InternalCommand) {
	log := logger.ForConn(cmd.ConnID).WithField("action", cmd.Action.String())

	sess, ok := s.sessions[cmd.ConnID]
	if !ok {
		log.WithError(handlers.ErrUnknownSession).Warn("Command dropped")
		return
	}

	handler, ok := s.handlers[cmd.Action]
	if !ok {
		log.WithError(ErrUnknownAction).Warn("Command dropped")
		return
	}

	result, err := handler(handlers.Context{Store: s.Store, ConnID: cmd.ConnID}, cmd.Payload)
	if err != nil {
		log.WithError(err).Warn("Command rejected")
		return
	}

	if result.Activate && sess.State == StateIdentified {
		if err := sess.Transition(StateActive); err != nil {
			log.WithError(err).Warn("Cannot activate session")
		} else {
			log.Info("Session active")
		}
	}

	s.record(cmd)
	if result.Msg != "" {
		log.Debug(result.Msg)
	}

	if s.silent {
		return
	}

	switch result.Broadcast {
	case handlers.BroadcastPlayers:
		s.broadcastPlayers()
	case handlers.BroadcastItem:
		s.broadcastItem()
	}
}

// broadcastPlayers рассылает ПОЛНЫЙ список игроков всем активным сессиям
func (s *GameService) broadcastPlayers() {
	msg, err := api.NewServerMessage(api.MsgPlayers, api.NewPlayerViews(s.Store.Players()))
	if err != nil {
		logger.Log.WithError(err).Error("Failed to encode players snapshot")
		return
	}
	s.Hub.Multicast(s.connIDs(func(sess *Session) bool { return sess.State == StateActive }), msg)
}

// broadcastItem рассылает предмет всем опознанным соединениям
func (s *GameService) broadcastItem() {
	msg, err := api.NewServerMessage(api.MsgItem, api.NewCollectibleView(s.Store.Item()))
	if err != nil {
		logger.Log.WithError(err).Error("Failed to encode item snapshot")
		return
	}
	s.Hub.Multicast(s.connIDs((*Session).Receives), msg)
}

func (s *GameService) connIDs(filter func(*Session) bool) []string {
	ids := make([]string, 0, len(s.sessions))
	for id, sess := range s.sessions {
		if filter(sess) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func (s *GameService) record(cmd domain.InternalCommand) {
	if s.Config.RecordJournal && s.Journal != nil {
		s.Journal.Append(cmd)
	}
}

func (s *GameService) snapshot() Snapshot {
	sessions := make([]SessionInfo, 0, len(s.sessions))
	for id, sess := range s.sessions {
		sessions = append(sessions, SessionInfo{ConnID: id, State: sess.State})
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].ConnID < sessions[j].ConnID })

	return Snapshot{
		Players:  s.Store.Players(),
		Item:     s.Store.Item(),
		Sessions: sessions,
	}
}
