// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sdfpipeline generates WGSL shader source for signed-distance-field
// draws and owns the compiled-pipeline cache keyed by scene.PipelineKey.
package sdfpipeline

// primitiveLibrary is the WGSL source of every signed-distance primitive an
// SDFCommand's expression may call. It is prepended verbatim to every
// generated fragment shader, so it must compile standalone — naga validates
// the whole assembled module, primitives included, on every cache miss.
const primitiveLibrary = `
fn sdCircle(p: vec2<f32>, r: f32) -> f32 {
    return length(p) - r;
}

fn sdBox(p: vec2<f32>, b: vec2<f32>) -> f32 {
    let d = abs(p) - b;
    return length(max(d, vec2<f32>(0.0))) + min(max(d.x, d.y), 0.0);
}

fn sdRoundBox(p: vec2<f32>, b: vec2<f32>, r: f32) -> f32 {
    return sdBox(p, b - vec2<f32>(r)) - r;
}

fn sdSegment(p: vec2<f32>, a: vec2<f32>, b: vec2<f32>) -> f32 {
    let pa = p - a;
    let ba = b - a;
    let h = clamp(dot(pa, ba) / dot(ba, ba), 0.0, 1.0);
    return length(pa - ba * h);
}

fn sdCapsule(p: vec2<f32>, a: vec2<f32>, b: vec2<f32>, r: f32) -> f32 {
    return sdSegment(p, a, b) - r;
}

fn sdTriangle(p: vec2<f32>, p0: vec2<f32>, p1: vec2<f32>, p2: vec2<f32>) -> f32 {
    let e0 = p1 - p0;
    let e1 = p2 - p1;
    let e2 = p0 - p2;
    let v0 = p - p0;
    let v1 = p - p1;
    let v2 = p - p2;
    let pq0 = v0 - e0 * clamp(dot(v0, e0) / dot(e0, e0), 0.0, 1.0);
    let pq1 = v1 - e1 * clamp(dot(v1, e1) / dot(e1, e1), 0.0, 1.0);
    let pq2 = v2 - e2 * clamp(dot(v2, e2) / dot(e2, e2), 0.0, 1.0);
    let s = sign(e0.x * e2.y - e0.y * e2.x);
    let d = min(min(
        vec2<f32>(dot(pq0, pq0), s * (v0.x * e0.y - v0.y * e0.x)),
        vec2<f32>(dot(pq1, pq1), s * (v1.x * e1.y - v1.y * e1.x))),
        vec2<f32>(dot(pq2, pq2), s * (v2.x * e2.y - v2.y * e2.x)));
    return -sqrt(d.x) * sign(d.y);
}

fn sdEquilateralTriangle(p: vec2<f32>, r: f32) -> f32 {
    let k = sqrt(3.0);
    var q = vec2<f32>(abs(p.x) - r, p.y + r / k);
    if (q.x + k * q.y > 0.0) {
        q = vec2<f32>(q.x - k * q.y, -k * q.x - q.y) / 2.0;
    }
    q.x = q.x - clamp(q.x, -2.0 * r, 0.0);
    return -length(q) * sign(q.y);
}

fn sdRing(p: vec2<f32>, r: f32, thickness: f32) -> f32 {
    return abs(length(p) - r) - thickness;
}

fn sdEllipse(p: vec2<f32>, ab: vec2<f32>) -> f32 {
    var pp = abs(p);
    var a = ab;
    if (pp.x > pp.y) {
        pp = pp.yx;
        a = a.yx;
    }
    let l = a.y * a.y - a.x * a.x;
    let m = a.x * pp.x / l;
    let m2 = m * m;
    let n = a.y * pp.y / l;
    let n2 = n * n;
    let c = (m2 + n2 - 1.0) / 3.0;
    let c3 = c * c * c;
    let q = c3 + m2 * n2 * 2.0;
    let d = c3 + m2 * n2;
    let g = m + m * n2;
    var co: f32;
    if (d < 0.0) {
        let h = acos(clamp(q / c3, -1.0, 1.0)) / 3.0;
        let s = cos(h);
        let t = sin(h) * sqrt(3.0);
        let rx = sqrt(-c * (s + t + 2.0) + m2);
        let ry = sqrt(-c * (s - t + 2.0) + m2);
        co = (ry + sign(l) * rx + abs(g) / (rx * ry) - m) / 2.0;
    } else {
        let h = 2.0 * m * n * sqrt(d);
        let s = sign(q + h) * pow(abs(q + h), 1.0 / 3.0);
        let u = sign(q - h) * pow(abs(q - h), 1.0 / 3.0);
        let rx = -s - u - c * 4.0 + 2.0 * m2;
        let ry = (s - u) * sqrt(3.0);
        let rm = sqrt(rx * rx + ry * ry);
        co = (ry / sqrt(rm - rx) + 2.0 * g / rm - m) / 2.0;
    }
    let r = a * vec2<f32>(co, sqrt(1.0 - co * co));
    return length(r - pp) * sign(pp.y - r.y);
}

fn sdHexagon(p: vec2<f32>, r: f32) -> f32 {
    let k = vec3<f32>(-0.866025404, 0.5, 0.577350269);
    var pp = abs(p);
    pp = pp - 2.0 * min(dot(k.xy, pp), 0.0) * k.xy;
    pp = pp - vec2<f32>(clamp(pp.x, -k.z * r, k.z * r), r);
    return length(pp) * sign(pp.y);
}

fn sdPentagon(p: vec2<f32>, r: f32) -> f32 {
    let k = vec3<f32>(0.809016994, 0.587785252, 0.726542528);
    var pp = vec2<f32>(abs(p.x), p.y);
    pp = pp - 2.0 * min(dot(vec2<f32>(-k.x, k.y), pp), 0.0) * vec2<f32>(-k.x, k.y);
    pp = pp - 2.0 * min(dot(vec2<f32>(k.x, k.y), pp), 0.0) * vec2<f32>(k.x, k.y);
    pp = pp - vec2<f32>(clamp(pp.x, -r * k.z, r * k.z), r);
    return length(pp) * sign(pp.y);
}

fn sdStar(p: vec2<f32>, r: f32, n: i32, m: f32) -> f32 {
    let an = 3.141592653589793 / f32(n);
    let en = 3.141592653589793 / m;
    let acs = vec2<f32>(cos(an), sin(an));
    let ecs = vec2<f32>(cos(en), sin(en));
    let bn = (atan2(p.x, p.y) % (2.0 * an)) - an;
    var pp = length(p) * vec2<f32>(cos(bn), abs(sin(bn)));
    pp = pp - r * acs;
    pp = pp + ecs * clamp(-dot(pp, ecs), 0.0, r * acs.y / ecs.y);
    return length(pp) * sign(pp.x);
}

fn sdCross(p: vec2<f32>, b: vec2<f32>, r: f32) -> f32 {
    var pp = abs(p);
    pp = select(pp, pp.yx, pp.y > pp.x);
    let q = pp - b;
    let k = max(q.y, q.x);
    let w = select(vec2<f32>(b.y - pp.x, -k), q, k > 0.0);
    return sign(k) * length(max(w, vec2<f32>(0.0))) + r;
}

fn sdMoon(p: vec2<f32>, d: f32, ra: f32, rb: f32) -> f32 {
    var pp = vec2<f32>(p.x, abs(p.y));
    let a = (ra * ra - rb * rb + d * d) / (2.0 * d);
    let b = sqrt(max(ra * ra - a * a, 0.0));
    if (d * (pp.x * b - pp.y * a) > d * d * max(b - pp.y, 0.0)) {
        return length(pp - vec2<f32>(a, b));
    }
    return max(length(pp) - ra, -(length(pp - vec2<f32>(d, 0.0)) - rb));
}

fn sdEgg(p: vec2<f32>, ra: f32, rb: f32) -> f32 {
    let k = sqrt(3.0);
    var pp = vec2<f32>(abs(p.x), p.y);
    let r = ra - rb;
    if (pp.y < 0.0) {
        return length(pp) - r - rb;
    }
    if (k * (pp.x + r) < pp.y) {
        return length(vec2<f32>(pp.x, pp.y - k * r)) - rb;
    }
    return length(vec2<f32>(pp.x + r, pp.y)) - 2.0 * r - rb;
}

fn sdHeart(p: vec2<f32>) -> f32 {
    var pp = p;
    pp.x = abs(pp.x);
    if (pp.y + pp.x > 1.0) {
        return sqrt(dot(pp - vec2<f32>(0.25, 0.75), pp - vec2<f32>(0.25, 0.75))) - sqrt(2.0) / 4.0;
    }
    let a = dot(pp, pp) - (2.0 * pp.x - 1.0) * min(pp.x + pp.y, 0.0);
    let m = min(pp.x + pp.y, 0.0);
    return sqrt(min(dot(pp - vec2<f32>(0.0, 1.0), pp - vec2<f32>(0.0, 1.0)), a)) * sign(pp.x - pp.y);
}

fn sdPolygon(p: vec2<f32>, v: array<vec2<f32>, 16>, n: i32) -> f32 {
    var d = dot(p - v[0], p - v[0]);
    var s = 1.0;
    var j = n - 1;
    for (var i = 0; i < n; i = i + 1) {
        let e = v[j] - v[i];
        let w = p - v[i];
        let b = w - e * clamp(dot(w, e) / dot(e, e), 0.0, 1.0);
        d = min(d, dot(b, b));
        let c = vec3<bool>(p.y >= v[i].y, p.y < v[j].y, e.x * w.y > e.y * w.x);
        if ((c.x && c.y && c.z) || (!c.x && !c.y && !c.z)) {
            s = s * -1.0;
        }
        j = i;
    }
    return s * sqrt(d);
}
`

// compositionLibrary is the WGSL source of the boolean/transform
// combinators an SDFCommand's expression may call to combine primitives.
const compositionLibrary = `
fn opUnion(a: f32, b: f32) -> f32 {
    return min(a, b);
}

fn opSubtract(a: f32, b: f32) -> f32 {
    return max(a, -b);
}

fn opIntersect(a: f32, b: f32) -> f32 {
    return max(a, b);
}

fn opSmoothUnion(a: f32, b: f32, k: f32) -> f32 {
    let h = clamp(0.5 + 0.5 * (b - a) / k, 0.0, 1.0);
    return mix(b, a, h) - k * h * (1.0 - h);
}

fn opSmoothSubtract(a: f32, b: f32, k: f32) -> f32 {
    let h = clamp(0.5 - 0.5 * (b + a) / k, 0.0, 1.0);
    return mix(a, -b, h) + k * h * (1.0 - h);
}

fn opSmoothIntersect(a: f32, b: f32, k: f32) -> f32 {
    let h = clamp(0.5 - 0.5 * (b - a) / k, 0.0, 1.0);
    return mix(b, a, h) + k * h * (1.0 - h);
}

fn opRound(d: f32, r: f32) -> f32 {
    return d - r;
}

fn opAnnular(d: f32, r: f32) -> f32 {
    return abs(d) - r;
}

fn opRepeat(p: vec2<f32>, c: vec2<f32>) -> vec2<f32> {
    return p - c * round(p / c);
}

fn opTranslate(p: vec2<f32>, t: vec2<f32>) -> vec2<f32> {
    return p - t;
}

fn opRotate(p: vec2<f32>, a: f32) -> vec2<f32> {
    let s = sin(a);
    let c = cos(a);
    return vec2<f32>(c * p.x + s * p.y, -s * p.x + c * p.y);
}

fn opScale(p: vec2<f32>, s: f32) -> vec2<f32> {
    return p / s;
}
`
