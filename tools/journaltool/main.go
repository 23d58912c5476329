package main

import (
	"apple-chase/internal/domain"
	"apple-chase/internal/infrastructure/storage"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "dump":
		j := load()
		fmt.Printf("started %s, %d records\n", time.Unix(j.StartedAt, 0).Format(time.RFC3339), j.Len())
		for _, r := range j.Records {
			fmt.Printf("%6d %-14s %-36s %s\n", r.Seq, r.Action, r.ConnID, r.Payload)
		}
	case "stats":
		j := load()
		printStats(j)
	case "id":
		if len(os.Args) < 3 {
			fmt.Println("Usage: journaltool id <player_or_item_id>")
			return
		}
		ms, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			fmt.Printf("Invalid id: %v\n", err)
			return
		}
		fmt.Println(time.UnixMilli(ms).Format(time.RFC3339Nano))
	default:
		printHelp()
	}
}

func load() *domain.Journal {
	if len(os.Args) < 3 {
		fmt.Printf("Usage: journaltool %s <file.aprl>\n", os.Args[1])
		os.Exit(2)
	}
	j, err := (&storage.JournalService{}).Load(os.Args[2])
	if err != nil {
		fmt.Printf("Cannot read journal: %v\n", err)
		os.Exit(1)
	}
	return j
}

func printStats(j *domain.Journal) {
	byAction := make(map[domain.ActionType]int)
	byConn := make(map[string]int)
	for _, r := range j.Records {
		byAction[r.Action]++
		byConn[r.ConnID]++
	}

	fmt.Printf("records: %d, connections: %d\n", j.Len(), len(byConn))
	for _, a := range []domain.ActionType{domain.ActionConnect, domain.ActionUpdatePlayer, domain.ActionUpdateItem, domain.ActionDisconnect} {
		fmt.Printf("  %-14s %d\n", a, byAction[a])
	}

	conns := make([]string, 0, len(byConn))
	for c := range byConn {
		conns = append(conns, c)
	}
	sort.Slice(conns, func(i, k int) bool { return byConn[conns[i]] > byConn[conns[k]] })
	for _, c := range conns {
		fmt.Printf("  %-36s %d\n", c, byConn[c])
	}
}

func printHelp() {
	fmt.Println(`Journal Tool - просмотр журналов релея (.aprl)
Commands:
  dump <file>    - все записи журнала по порядку
  stats <file>   - количество событий по типам и соединениям
  id <id>        - ID игрока или предмета (мс) в читаемое время`)
}
