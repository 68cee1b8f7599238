package view

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>mGacha Dashboard</title>
    <style>
        body { font-family: Arial; background: #111; color: white; margin: 20px; }
        h2, h3 { margin: 5px 0; }
        .cards { display: flex; flex-wrap: wrap; gap: 10px; }
        .card { width: 285px; text-align: center; margin-bottom: 20px; }
        .card img { width: 100%; display: block; }
        select, button { padding: 5px; margin-right: 5px; }
        .filters { display: flex; align-items: flex-end; margin-bottom: 20px; gap: 10px; }
        textarea { width: 100%; background: #222; color: #fff; }
    </style>
</head>
<body>
    <h1>🎴 mGacha Dashboard</h1>

    <h2>🏆 Top {{len .TopUsers}} collectors</h2>
    {{range .TopUsers}}
        <div>{{.TwitchName}} - {{.TotalUniqueCards}}/{{$.TotalUniqueCards}}</div>
    {{end}}

    <hr>

    <form method="get" action="/">
        <label>User:</label>
        <select name="user_id" onchange="this.form.submit()">
            {{range .AllUsers}}
                <option value="{{.ID}}"{{if eq .ID $.SelectedUserID}} selected{{end}}>{{.TwitchName}}</option>
            {{end}}
        </select>

        <div class="filters">
            <div>
                <label>Sort by:</label>
                <select name="sort_type" onchange="this.form.submit()">
                    {{range .SortOptions}}
                        <option value="{{.}}"{{if eq . $.SortType}} selected{{end}}>{{.}}</option>
                    {{end}}
                </select>
            </div>
            <div>
                <button name="reverse" value="{{if .Reverse}}0{{else}}1{{end}}">⇅</button>
            </div>
        </div>
    </form>

    <h2>📦 Cards of {{.SelectedUserName}}</h2>
    <div class="cards">
        {{range .Cards}}
            <div class="card">
                <img src="{{.ImageURL}}">
                <div>{{.Name}} - {{.Rarity}} x{{.Quantity}}</div>
            </div>
        {{end}}
        {{if not .Cards}}
            <div>No cards found</div>
        {{end}}
    </div>

    <hr>
    <h2>📜 Action history of {{.SelectedUserName}}</h2>
    {{if .Logs}}
        <textarea rows="10" readonly>
{{range .Logs}}{{.}}
{{end}}</textarea>
    {{else}}
        <div>No history found</div>
    {{end}}
</body>
</html>
`
