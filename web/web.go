// Package web serves the chart page.
package web

import (
	"fmt"
	"net/http"
)

// Handler serves the single page chart UI at the root path.
type Handler struct{}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	fmt.Fprint(w, indexHTML)
}

const indexHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <title>Real-Time Price Plot from IEX</title>
  <style>
    body { font-family: ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Arial; margin: 0; background: #fafafa; color: #222; }
    main { max-width: 960px; margin: 16px auto; padding: 0 16px; }
    h2 { font-weight: 600; font-size: 18px; margin: 8px 0 12px; }
    .controls { display: flex; align-items: center; gap: 8px; margin: 12px 0; }
    .controls input { padding: 6px 8px; border: 1px solid #bbb; border-radius: 4px; font-size: 14px; width: 120px; }
    .controls button { padding: 6px 14px; border: 1px solid #888; border-radius: 4px; background: #fff; font-size: 14px; cursor: pointer; }
    .controls button:hover { background: #eee; }
    #chart { background: #fff; border: 1px solid #ddd; border-radius: 4px; width: 100%; height: 420px; display: block; }
    #tooltip { position: absolute; display: none; background: #fff; border: 1px solid #888; border-radius: 4px; padding: 4px 8px; font-size: 12px; pointer-events: none; white-space: nowrap; }
  </style>
</head>
<body>
<main>
  <h2 id="title"></h2>
  <canvas id="chart"></canvas>
  <div id="tooltip"></div>
  <div class="controls">
    <label for="symbol">Ticker:</label>
    <input id="symbol" type="text" placeholder="AAPL"/>
    <button id="update">Update</button>
  </div>
</main>
<script>
var MAX_POINTS = 3600;

var columns = { time: [], display_time: [], price: [] };

var canvas = document.getElementById('chart');
var ctx = canvas.getContext('2d');
var tooltip = document.getElementById('tooltip');

var pad = { left: 64, right: 20, top: 16, bottom: 96 };

function applyReset(snapshot) {
  document.getElementById('title').textContent = snapshot.title || '';
  columns = {
    time: (snapshot.columns.time || []).slice(),
    display_time: (snapshot.columns.display_time || []).slice(),
    price: (snapshot.columns.price || []).slice()
  };
  draw();
}

function applyAppend(cols) {
  for (var i = 0; i < cols.time.length; i++) {
    columns.time.push(cols.time[i]);
    columns.display_time.push(cols.display_time[i]);
    columns.price.push(cols.price[i]);
  }
  while (columns.time.length > MAX_POINTS) {
    columns.time.shift();
    columns.display_time.shift();
    columns.price.shift();
  }
  draw();
}

function scales() {
  var n = columns.time.length;
  var w = canvas.clientWidth - pad.left - pad.right;
  var h = canvas.clientHeight - pad.top - pad.bottom;

  var t0 = columns.time[0];
  var t1 = columns.time[n - 1];
  if (t1 === t0) { t1 = t0 + 1; }

  var lo = Math.min.apply(null, columns.price);
  var hi = Math.max.apply(null, columns.price);
  if (hi === lo) { lo -= 1; hi += 1; }
  var margin = (hi - lo) * 0.05;
  lo -= margin; hi += margin;

  return {
    x: function (t) { return pad.left + ((t - t0) / (t1 - t0)) * w; },
    y: function (p) { return pad.top + (1 - (p - lo) / (hi - lo)) * h; },
    lo: lo, hi: hi
  };
}

function draw() {
  var ratio = window.devicePixelRatio || 1;
  canvas.width = canvas.clientWidth * ratio;
  canvas.height = canvas.clientHeight * ratio;
  ctx.setTransform(ratio, 0, 0, ratio, 0, 0);
  ctx.clearRect(0, 0, canvas.clientWidth, canvas.clientHeight);

  var n = columns.time.length;
  if (n === 0) { return; }

  var s = scales();

  ctx.strokeStyle = '#ccc';
  ctx.fillStyle = '#555';
  ctx.font = '11px sans-serif';
  ctx.lineWidth = 1;

  var yTicks = 5;
  for (var i = 0; i <= yTicks; i++) {
    var p = s.lo + ((s.hi - s.lo) * i) / yTicks;
    var y = s.y(p);
    ctx.beginPath();
    ctx.moveTo(pad.left, y);
    ctx.lineTo(canvas.clientWidth - pad.right, y);
    ctx.stroke();
    ctx.textAlign = 'right';
    ctx.fillText(p.toFixed(2), pad.left - 6, y + 4);
  }

  var xTicks = Math.min(6, n);
  for (var j = 0; j < xTicks; j++) {
    var idx = xTicks === 1 ? 0 : Math.round((j * (n - 1)) / (xTicks - 1));
    var x = s.x(columns.time[idx]);
    ctx.save();
    ctx.translate(x, canvas.clientHeight - pad.bottom + 10);
    ctx.rotate(-Math.PI / 4);
    ctx.textAlign = 'right';
    ctx.fillText(columns.display_time[idx], 0, 0);
    ctx.restore();
  }

  ctx.strokeStyle = '#1f77b4';
  ctx.lineWidth = 1.5;
  ctx.beginPath();
  for (var k = 0; k < n; k++) {
    var px = s.x(columns.time[k]);
    var py = s.y(columns.price[k]);
    if (k === 0) { ctx.moveTo(px, py); } else { ctx.lineTo(px, py); }
  }
  ctx.stroke();

  if (n === 1) {
    ctx.fillStyle = '#1f77b4';
    ctx.beginPath();
    ctx.arc(s.x(columns.time[0]), s.y(columns.price[0]), 3, 0, 2 * Math.PI);
    ctx.fill();
  }
}

canvas.addEventListener('mousemove', function (event) {
  var n = columns.time.length;
  if (n === 0) { tooltip.style.display = 'none'; return; }

  var rect = canvas.getBoundingClientRect();
  var mouseX = event.clientX - rect.left;
  var s = scales();

  var best = 0;
  var bestDist = Infinity;
  for (var i = 0; i < n; i++) {
    var dist = Math.abs(s.x(columns.time[i]) - mouseX);
    if (dist < bestDist) { bestDist = dist; best = i; }
  }

  tooltip.textContent = columns.display_time[best] + ' | ' + columns.price[best].toFixed(2);
  tooltip.style.display = 'block';
  tooltip.style.left = (event.pageX + 12) + 'px';
  tooltip.style.top = (event.pageY - 10) + 'px';
});

canvas.addEventListener('mouseleave', function () {
  tooltip.style.display = 'none';
});

window.addEventListener('resize', draw);

function connect() {
  var scheme = location.protocol === 'https:' ? 'wss://' : 'ws://';
  var socket = new WebSocket(scheme + location.host + '/ws');

  socket.onmessage = function (event) {
    var frame = JSON.parse(event.data);
    if (frame.type === 'reset') { applyReset(frame.data); }
    if (frame.type === 'append') { applyAppend(frame.data); }
  };

  socket.onclose = function () {
    setTimeout(connect, 3000);
  };
}

document.getElementById('update').addEventListener('click', function () {
  var symbol = document.getElementById('symbol').value;
  fetch('/api/ticker', {
    method: 'POST',
    headers: { 'Content-Type': 'application/json' },
    body: JSON.stringify({ symbol: symbol })
  }).then(function (resp) { return resp.json(); })
    .then(function (body) { if (body.data) { applyReset(body.data); } });
});

document.getElementById('symbol').addEventListener('keydown', function (event) {
  if (event.key === 'Enter') { document.getElementById('update').click(); }
});

connect();
</script>
</body>
</html>
`
